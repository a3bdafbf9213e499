package bounded

import (
	"log/slog"

	"github.com/google/uuid"
)

// credMask hides Credentials from log messages and casual printing.
const credMask = "xxxxxx"

// A Credential is the single-use token gating the release of a transient lock.
//
// Each successful [*Value.Lock] issues a fresh Credential that is equal to
// itself and to nothing else. The zero-value Credential is never issued and
// never releases a lock.
type Credential struct {
	id uuid.UUID
}

func newCredential() Credential { return Credential{id: uuid.New()} }

// String masks the Credential.
//
// String implements [fmt.Stringer].
func (c Credential) String() string { return credMask }

// Valid asserts whether the Credential was issued by a [*Value.Lock] call.
func (c Credential) Valid() error {
	if c.id == uuid.Nil {
		return ErrNotValid
	}

	return nil
}

// LogValue masks the Credential in structured log output.
//
// LogValue implements [log/slog.LogValuer].
func (c Credential) LogValue() slog.Value { return slog.StringValue(credMask) }
