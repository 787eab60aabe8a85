package smallvec

import "fmt"

// Clone returns an independent copy of the vector, sized to its element
// count. Mutating either vector afterwards leaves the other untouched.
// Element copies go through Cloner for element types implementing it; on a
// failed copy or allocation the new vector is discarded and Clone reports
// the failure.
func (v *Vec[T, A]) Clone() (*Vec[T, A], error) {
	out := &Vec[T, A]{mem: v.mem}
	if err := out.CopyFrom(v); err != nil {
		return nil, err
	}
	return out, nil
}

// CopyFrom replaces the vector's contents with a copy of other's. The
// current contents and storage are released first, then fresh storage is
// sized to other's element count and every element is copied in order.
// A failed element copy unwinds the elements constructed so far, leaving
// the destination empty but valid. Copying from itself is a no-op.
func (v *Vec[T, A]) CopyFrom(other *Vec[T, A]) error {
	if v == other {
		return nil
	}
	v.Release()
	if err := v.Reserve(other.n); err != nil {
		return err
	}
	r := v.region()
	for i, src := range other.live() {
		elem, err := copyElem(src)
		if err != nil {
			destroyRange(r, 0, i)
			v.Release()
			return v.fail("copy", fmt.Errorf("%w: %w", ErrElementFailed, err))
		}
		r[i] = elem
	}
	v.n = other.n
	return nil
}

// TakeFrom moves other's contents into v, leaving other empty with inline
// storage. TakeFrom never fails.
//
// A heap-resident source hands over its region in O(1): v adopts the
// region, the element count, and the allocator reference the region must
// eventually be returned to. An inline source cannot hand over a region
// embedded in its own footprint, so its elements move into v's inline
// region one by one, in order, and the source is cleared afterwards.
// Taking from itself is a no-op.
func (v *Vec[T, A]) TakeFrom(other *Vec[T, A]) {
	if v == other {
		return
	}
	v.Release()
	if other.heap != nil {
		v.heap = other.heap
		v.n = other.n
		v.mem = other.mem
		other.heap = nil
		other.n = 0
		return
	}
	dst := v.inlineSlice()
	src := other.inlineSlice()
	copy(dst[:other.n], src[:other.n])
	v.n = other.n
	other.Clear()
}

// Swap exchanges the contents of two vectors, including their storage
// classification. Swap never fails and never allocates.
//
// Two heap-resident vectors swap region ownership only, in O(1), without
// touching elements. Two inline vectors swap element-wise over the
// overlapping index range and move the surplus of the larger side into the
// smaller side's free slots. Mixed modes fall back to a three-way move
// through a temporary, paying the O(N) cost of one inline move.
func (v *Vec[T, A]) Swap(other *Vec[T, A]) {
	if v == other {
		return
	}
	switch {
	case v.heap != nil && other.heap != nil:
		v.heap, other.heap = other.heap, v.heap
		v.n, other.n = other.n, v.n
		v.mem, other.mem = other.mem, v.mem // regions travel with their allocator
	case v.heap == nil && other.heap == nil:
		a, b := v.inlineSlice(), other.inlineSlice()
		small, large := v.n, other.n
		if small > large {
			small, large = large, small
		}
		for i := 0; i < small; i++ {
			a[i], b[i] = b[i], a[i]
		}
		if v.n > other.n {
			copy(b[small:large], a[small:large])
			destroyRange(a, small, large)
		} else if other.n > v.n {
			copy(a[small:large], b[small:large])
			destroyRange(b, small, large)
		}
		v.n, other.n = other.n, v.n
	default:
		var tmp Vec[T, A]
		tmp.TakeFrom(v)
		v.TakeFrom(other)
		other.TakeFrom(&tmp)
	}
}

// Swap exchanges the contents of two vectors. See the Swap method.
func Swap[T any, A any](a, b *Vec[T, A]) {
	a.Swap(b)
}
