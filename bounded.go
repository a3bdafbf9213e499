package bounded

import (
	"fmt"
	"iter"
	"slices"

	"github.com/xy-planning-network/bounded/logger"
)

// A Value holds exactly one of a fixed, ordered set of allowed states.
//
// The allowed states are set once at construction and never change afterward.
// The current state always equals one of them, beginning with the first.
// [*Value.Lock] and [*Value.PermaLock] gate mutation of the current state.
//
// A Value is not safe for concurrent use; callers sharing one across
// goroutines must synchronize [*Value.SetState], [*Value.Lock] and
// [*Value.Unlock] themselves.
type Value[T comparable] struct {
	states  []T
	current int
	lock    lockState
	cred    Credential
	mode    Mode
	log     logger.Logger
}

// New constructs a *Value allowing only the provided states,
// with the first element as the initial current state.
//
// New requires at least one state.
// Given none, a Strict Value fails with ErrBadConstruction;
// a Permissive Value substitutes a single-element set
// holding the zero value of T.
//
// New copies states; later mutation of the argument has no effect.
func New[T comparable](states []T, opts ...OptFn) (*Value[T], error) {
	cfg := newOptions(opts)
	v := &Value[T]{mode: cfg.mode, log: cfg.log}

	if len(states) == 0 {
		if v.mode.IsStrict() {
			return nil, fmt.Errorf("%w: at least one allowed state required", ErrBadConstruction)
		}

		var zero T
		v.states = []T{zero}
		return v, nil
	}

	v.states = make([]T, len(states))
	copy(v.states, states)

	return v, nil
}

// From constructs a Permissive *Value allowing only the provided states.
// From never fails; given no states it holds the zero value of T.
func From[T comparable](states ...T) *Value[T] {
	v, _ := New(states)
	return v
}

// Collect constructs a *Value by draining seq into the allowed states,
// preserving the order seq yields them in.
// An empty seq follows the same rules as [New] given no states.
func Collect[T comparable](seq iter.Seq[T], opts ...OptFn) (*Value[T], error) {
	var states []T
	for s := range seq {
		states = append(states, s)
	}

	return New(states, opts...)
}

// valueHolder marks *Value for runtime type checks
// without reference to its type parameter.
type valueHolder interface{ boundedValue() }

func (*Value[T]) boundedValue() {}

// Is asserts whether candidate is a *Value of any type parameter.
func Is(candidate any) bool {
	_, ok := candidate.(valueHolder)
	return ok
}

// State returns the current state.
func (v *Value[T]) State() T { return v.states[v.current] }

// States returns the allowed states in their fixed order.
// The returned slice is a copy; mutating it has no effect on the Value.
func (v *Value[T]) States() []T {
	out := make([]T, len(v.states))
	copy(out, v.states)

	return out
}

// Len returns the count of allowed states.
func (v *Value[T]) Len() int { return len(v.states) }

// IndexOf returns the position of candidate among the allowed states,
// or -1 when candidate is not one of them.
// A duplicated state resolves to its first occurrence.
func (v *Value[T]) IndexOf(candidate T) int {
	return slices.Index(v.states, candidate)
}

// IsValidState asserts whether candidate is one of the allowed states.
func (v *Value[T]) IsValidState(candidate T) bool {
	return v.IndexOf(candidate) != -1
}

// SetState transitions the Value to candidate
// and returns the resulting current state.
//
// A candidate outside the allowed states fails with ErrNotValid;
// a lock in place fails with ErrLocked.
// Validity is checked before the lock,
// so an invalid candidate is rejected the same way regardless of lock state.
// In Permissive Mode both failures return the unchanged current state
// and a nil error.
func (v *Value[T]) SetState(candidate T) (T, error) {
	i := v.IndexOf(candidate)
	if i == -1 {
		return v.State(), v.failed(fmt.Errorf("%w: not an allowed state: %v", ErrNotValid, candidate))
	}

	if v.lock != unlocked {
		return v.State(), v.failed(ErrLocked)
	}

	v.current = i
	v.debugf("state set to %v", candidate)

	return v.State(), nil
}

// failed resolves err according to the Value's Mode:
// Strict surfaces it, Permissive swallows it.
func (v *Value[T]) failed(err error) error {
	v.debugf("operation refused: %s", err)

	if v.mode.IsStrict() {
		return err
	}

	return nil
}

func (v *Value[T]) debugf(format string, args ...any) {
	if v.log == nil {
		return
	}

	v.log.Debug(fmt.Sprintf(format, args...))
}
