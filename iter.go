package bounded

import "iter"

// All returns an iterator over index-state pairs of the allowed states
// in their fixed order.
//
// Each ranging of All restarts from the first state;
// iterating never consumes or mutates the allowed states.
func (v *Value[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, s := range v.states {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Values returns an iterator over the allowed states in their fixed order.
// Values restarts and never consumes, like [*Value.All].
func (v *Value[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, s := range v.states {
			if !yield(s) {
				return
			}
		}
	}
}

// Each applies fn to every allowed state in order,
// passing the state, its position, and the full allowed set.
// The set passed to fn is the same copy for each call;
// mutating it has no effect on the Value.
func (v *Value[T]) Each(fn func(state T, i int, states []T)) {
	states := v.States()
	for i, s := range states {
		fn(s, i, states)
	}
}
