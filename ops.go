package smallvec

import "fmt"

// Push appends a copy of val. Storage grows by policy if the vector is
// full, promoting to a heap region on the first overflow of the inline
// capacity. A failed allocation or element copy leaves the elements
// unchanged.
func (v *Vec[T, A]) Push(val T) error {
	if err := v.ensureCapacity(v.n + 1); err != nil {
		return err
	}
	elem, err := copyElem(val)
	if err != nil {
		return v.fail("push", fmt.Errorf("%w: %w", ErrElementFailed, err))
	}
	v.region()[v.n] = elem
	v.n++
	return nil
}

// PushAll appends copies of all given elements. On failure the vector
// keeps exactly the elements it had before the call.
func (v *Vec[T, A]) PushAll(vals ...T) error {
	if err := v.ensureCapacity(v.n + len(vals)); err != nil {
		return err
	}
	r := v.region()
	placed := 0
	for _, val := range vals {
		elem, err := copyElem(val)
		if err != nil {
			destroyRange(r, v.n, v.n+placed)
			return v.fail("push", fmt.Errorf("%w: %w", ErrElementFailed, err))
		}
		r[v.n+placed] = elem
		placed++
	}
	v.n += placed
	return nil
}

// PushWith appends an element constructed in place by ctor, avoiding the
// intermediate copy of Push. A ctor error leaves the vector unchanged and
// is reported as an element failure.
func (v *Vec[T, A]) PushWith(ctor func() (T, error)) error {
	if err := v.ensureCapacity(v.n + 1); err != nil {
		return err
	}
	elem, err := ctor()
	if err != nil {
		return v.fail("push", fmt.Errorf("%w: %w", ErrElementFailed, err))
	}
	v.region()[v.n] = elem
	v.n++
	return nil
}

// Pop removes and returns the last element. On an empty vector Pop is a
// no-op returning the zero value and false. Pop never fails and never
// shrinks capacity.
func (v *Vec[T, A]) Pop() (T, bool) {
	var zero T
	if v.n == 0 {
		return zero, false
	}
	r := v.region()
	out := r[v.n-1]
	r[v.n-1] = zero
	v.n--
	return out, true
}

// Insert places a copy of val at index i, shifting elements [i, Len())
// one slot toward higher indices. i may equal Len(), appending. An index
// outside [0, Len()] yields ErrIndexOutOfBounds with no state change.
//
// Insert may relocate storage; existing views and element pointers are
// invalidated in that case. The value is cloned before any element moves,
// so a failed element copy also leaves the sequence unchanged.
func (v *Vec[T, A]) Insert(i int, val T) error {
	if i < 0 || i > v.n {
		return v.fail("insert", fmt.Errorf("%w: position %d of %d", ErrIndexOutOfBounds, i, v.n))
	}
	if err := v.ensureCapacity(v.n + 1); err != nil {
		return err
	}
	elem, err := copyElem(val)
	if err != nil {
		return v.fail("insert", fmt.Errorf("%w: %w", ErrElementFailed, err))
	}
	r := v.region()
	copy(r[i+1:v.n+1], r[i:v.n]) // shift the tail up one slot
	r[i] = elem
	v.n++
	return nil
}

// Erase removes the element at index i, shifting the tail down one slot.
func (v *Vec[T, A]) Erase(i int) error {
	_, err := v.EraseRange(i, i+1)
	return err
}

// EraseRange removes elements [first, last), preserving the order of the
// survivors, and returns the new index of the first element that followed
// the erased range (or Len() if none did). A range outside
// 0 ≤ first ≤ last ≤ Len() yields ErrIndexOutOfBounds with no state change;
// an empty range is a no-op.
func (v *Vec[T, A]) EraseRange(first, last int) (int, error) {
	if first < 0 || last > v.n || first > last {
		return 0, v.fail("erase", fmt.Errorf("%w: range [%d,%d) of %d", ErrIndexOutOfBounds, first, last, v.n))
	}
	if first == last {
		return first, nil
	}
	r := v.region()
	copy(r[first:], r[last:v.n])
	removed := last - first
	destroyRange(r, v.n-removed, v.n)
	v.n -= removed
	return first, nil
}

// Resize changes the element count to size. Shrinking destroys trailing
// elements and never fails. Growing reserves capacity, then appends copies
// of fill one at a time; if any copy fails, the fills added by this call
// are destroyed again before the error is reported, all or nothing.
func (v *Vec[T, A]) Resize(size int, fill T) error {
	switch {
	case size < 0:
		return v.fail("resize", fmt.Errorf("%w: size %d", ErrIndexOutOfBounds, size))
	case size == v.n:
		return nil
	case size < v.n:
		destroyRange(v.region(), size, v.n)
		v.n = size
		return nil
	}
	if err := v.Reserve(size); err != nil {
		return err
	}
	r := v.region()
	base := v.n
	for v.n < size {
		elem, err := copyElem(fill)
		if err != nil {
			destroyRange(r, base, v.n)
			v.n = base
			return v.fail("resize", fmt.Errorf("%w: %w", ErrElementFailed, err))
		}
		r[v.n] = elem
		v.n++
	}
	return nil
}

// Clear destroys all elements, back to front. Capacity and storage mode
// are unchanged; Clear never fails and is idempotent.
func (v *Vec[T, A]) Clear() {
	destroyRange(v.region(), 0, v.n)
	v.n = 0
}
