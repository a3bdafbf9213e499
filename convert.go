package bounded

import (
	"fmt"
	"log/slog"
)

// Index returns the position of the current state among the allowed states.
// A duplicated current state resolves to its first occurrence.
func (v *Value[T]) Index() int { return v.IndexOf(v.State()) }

// String renders the current state as text.
//
// String implements [fmt.Stringer].
func (v *Value[T]) String() string { return fmt.Sprint(v.State()) }

// GoString renders the Value for debugging output, such as the %#v verb.
//
// GoString implements [fmt.GoStringer].
func (v *Value[T]) GoString() string {
	return fmt.Sprintf("bounded.Value(%v)", v.State())
}

// LogValue renders the Value for structured logs,
// grouping the current state with its lock and Mode attributes.
//
// LogValue implements [log/slog.LogValuer].
func (v *Value[T]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("state", v.String()),
		slog.Bool("locked", v.IsLocked()),
		slog.String("mode", v.mode.String()),
	)
}
