package smallvec

import "iter"

// All returns a forward iterator over index/element pairs.
//
// The vector must not be mutated during iteration.
func (v *Vec[T, A]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.live() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Backward returns a reverse iterator over index/element pairs, from the
// last element down to the first.
func (v *Vec[T, A]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		r := v.live()
		for i := len(r) - 1; i >= 0; i-- {
			if !yield(i, r[i]) {
				return
			}
		}
	}
}

// Values returns a forward iterator over elements.
func (v *Vec[T, A]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.live() {
			if !yield(x) {
				return
			}
		}
	}
}

// Each calls fn for every element in index order, stopping at the first
// error, which is returned.
func (v *Vec[T, A]) Each(fn func(i int, val T) error) error {
	for i, x := range v.live() {
		if err := fn(i, x); err != nil {
			return err
		}
	}
	return nil
}
