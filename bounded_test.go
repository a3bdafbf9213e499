package bounded_test

import (
	"bytes"
	"log"
	"slices"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/bounded"
	"github.com/xy-planning-network/bounded/logger"
)

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		name     string
		states   []string
		opts     []bounded.OptFn
		expected string
		err      error
	}{
		{"Values", []string{"OFF", "LOW", "MID", "HIGH"}, nil, "OFF", nil},
		{"Values-Strict", []string{"A", "B"}, []bounded.OptFn{bounded.WithMode(bounded.Strict)}, "A", nil},
		{"Nil-Permissive", nil, nil, "", nil},
		{"Empty-Permissive", []string{}, nil, "", nil},
		{"Nil-Strict", nil, []bounded.OptFn{bounded.WithMode(bounded.Strict)}, "", bounded.ErrBadConstruction},
		{"Empty-Strict", []string{}, []bounded.OptFn{bounded.WithMode(bounded.Strict)}, "", bounded.ErrBadConstruction},
	} {
		t.Run(tc.name, func(t *testing.T) {
			v, err := bounded.New(tc.states, tc.opts...)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				require.Nil(t, v)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expected, v.State())
			require.GreaterOrEqual(t, v.Len(), 1)
		})
	}
}

func TestNewCopiesStates(t *testing.T) {
	input := []string{"A", "B", "C"}
	v, err := bounded.New(input)
	require.NoError(t, err)

	input[0] = "Z"
	require.Equal(t, "A", v.State())
	require.True(t, v.IsValidState("A"))
	require.False(t, v.IsValidState("Z"))
}

func TestFrom(t *testing.T) {
	v := bounded.From("granted", "invited", "revoked")
	require.Equal(t, "granted", v.State())
	require.Equal(t, 3, v.Len())

	// no states substitutes the zero value of T
	empty := bounded.From[int]()
	require.Equal(t, 0, empty.State())
	require.Equal(t, 1, empty.Len())
}

func TestCollect(t *testing.T) {
	v, err := bounded.Collect(slices.Values([]string{"A", "B"}))
	require.NoError(t, err)
	require.Equal(t, "A", v.State())
	require.Equal(t, []string{"A", "B"}, v.States())

	_, err = bounded.Collect(slices.Values([]string{}), bounded.WithMode(bounded.Strict))
	require.ErrorIs(t, err, bounded.ErrBadConstruction)
}

func TestIs(t *testing.T) {
	for _, tc := range []struct {
		name      string
		candidate any
		expected  bool
	}{
		{"String-Value", bounded.From("A"), true},
		{"Int-Value", bounded.From(1, 2), true},
		{"Nil", nil, false},
		{"String", "A", false},
		{"Slice", []string{"A"}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, bounded.Is(tc.candidate))
		})
	}
}

func TestSetState(t *testing.T) {
	t.Run("Strict", func(t *testing.T) {
		v, err := bounded.New([]string{"OFF", "LOW", "MID", "HIGH"}, bounded.WithMode(bounded.Strict))
		require.NoError(t, err)
		require.Equal(t, "OFF", v.State())

		actual, err := v.SetState("MID")
		require.NoError(t, err)
		require.Equal(t, "MID", actual)
		require.Equal(t, "MID", v.State())

		actual, err = v.SetState("BLAST")
		require.ErrorIs(t, err, bounded.ErrNotValid)
		require.Equal(t, "MID", actual)
		require.Equal(t, "MID", v.State())
	})

	t.Run("Permissive", func(t *testing.T) {
		v, err := bounded.New([]string{"A", "B"})
		require.NoError(t, err)

		actual, err := v.SetState("Z")
		require.NoError(t, err)
		require.Equal(t, "A", actual)
		require.Equal(t, "A", v.State())
	})

	t.Run("Invalid-Beats-Locked", func(t *testing.T) {
		v, err := bounded.New([]string{"A", "B"}, bounded.WithMode(bounded.Strict))
		require.NoError(t, err)

		_, err = v.Lock()
		require.NoError(t, err)

		_, err = v.SetState("Z")
		require.ErrorIs(t, err, bounded.ErrNotValid)

		_, err = v.SetState("B")
		require.ErrorIs(t, err, bounded.ErrLocked)
		require.Equal(t, "A", v.State())
	})
}

func TestStatesCopy(t *testing.T) {
	v := bounded.From("A", "B")

	states := v.States()
	states[0] = "Z"

	require.Equal(t, []string{"A", "B"}, v.States())
	require.False(t, v.IsValidState("Z"))
}

func TestWithLogger(t *testing.T) {
	color.NoColor = true

	b := new(bytes.Buffer)
	l := logger.New(
		logger.WithLevel(logger.LogLevelDebug),
		logger.WithLogger(log.New(b, "", 0)),
	)

	v, err := bounded.New([]string{"A", "B"}, bounded.WithLogger(l))
	require.NoError(t, err)

	_, err = v.SetState("B")
	require.NoError(t, err)
	require.Contains(t, b.String(), "state set to B")

	b.Reset()
	_, err = v.SetState("Z")
	require.NoError(t, err)
	require.Contains(t, b.String(), "operation refused")
	require.Contains(t, b.String(), "invalid")
}

func TestIndexOf(t *testing.T) {
	v := bounded.From("A", "B", "C", "B")

	for _, tc := range []struct {
		name      string
		candidate string
		expected  int
	}{
		{"First", "A", 0},
		{"Duplicate-First-Match", "B", 1},
		{"Last", "C", 2},
		{"Absent", "Z", -1},
		{"Zero-Value", "", -1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, v.IndexOf(tc.candidate))
			require.Equal(t, tc.expected != -1, v.IsValidState(tc.candidate))
		})
	}
}
