package bounded

// A Mode selects how a *Value responds when an operation cannot proceed.
//
// A Mode is fixed at construction and read by every fallible method.
type Mode string

const (
	// Permissive swallows failures: methods return a benign sentinel
	// result, such as the unchanged current value, and a nil error.
	Permissive Mode = "PERMISSIVE"

	// Strict surfaces failures as typed errors to the immediate caller.
	Strict Mode = "STRICT"
)

func (m Mode) String() string { return string(m) }

func (m Mode) Valid() error {
	switch m {
	case Permissive, Strict:
		return nil
	default:
		return ErrNotValid
	}
}

func (m Mode) IsPermissive() bool {
	return m == Permissive
}

func (m Mode) IsStrict() bool {
	return m == Strict
}
