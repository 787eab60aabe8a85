package smallvec

import "fmt"

// At returns the element at index i, checked: an index outside [0, Len())
// yields ErrIndexOutOfBounds with no side effect.
func (v *Vec[T, A]) At(i int) (T, error) {
	if i < 0 || i >= v.n {
		var zero T
		return zero, v.fail("at", fmt.Errorf("%w: index %d of %d", ErrIndexOutOfBounds, i, v.n))
	}
	return v.region()[i], nil
}

// Set overwrites the element at index i, checked like At.
func (v *Vec[T, A]) Set(i int, val T) error {
	if i < 0 || i >= v.n {
		return v.fail("set", fmt.Errorf("%w: index %d of %d", ErrIndexOutOfBounds, i, v.n))
	}
	v.region()[i] = val
	return nil
}

// Get returns the element at index i, unchecked. Indexing outside
// [0, Len()) is the caller's responsibility and panics.
func (v *Vec[T, A]) Get(i int) T {
	return v.live()[i]
}

// Front returns the first element. The vector must not be empty.
func (v *Vec[T, A]) Front() T {
	return v.live()[0]
}

// Back returns the last element. The vector must not be empty.
func (v *Vec[T, A]) Back() T {
	return v.live()[v.n-1]
}

// Slice returns the live elements as a contiguous slice, aliasing the
// active storage region. The view stays valid only until the next
// capacity-changing or storage-mode-changing operation; callers must not
// retain it across such calls.
func (v *Vec[T, A]) Slice() []T {
	return v.live()
}
