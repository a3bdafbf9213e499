package bounded_test

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/bounded"
)

func TestCredentialValid(t *testing.T) {
	var zero bounded.Credential
	require.ErrorIs(t, zero.Valid(), bounded.ErrNotValid)

	cred, err := bounded.From("A").Lock()
	require.NoError(t, err)
	require.NoError(t, cred.Valid())
}

func TestCredentialMasked(t *testing.T) {
	cred, err := bounded.From("A").Lock()
	require.NoError(t, err)

	require.Equal(t, "xxxxxx", fmt.Sprint(cred))
	require.Equal(t, slog.StringValue("xxxxxx"), cred.LogValue())
}
