package smallvec

import (
	"fmt"
	"reflect"
	"unsafe"
)

// largeSizeThreshold separates the aggressive doubling regime from the
// gentler 1.5× regime that bounds overhead for big vectors.
const largeSizeThreshold = 1024

// inlineCapFor computes N from the array type A and verifies that A really
// is [N]T. The check runs once per vector and trips an assertion on
// malformed instantiations like Vec[int, [4]string].
func inlineCapFor[T any, A any]() int {
	ta := reflect.TypeFor[A]()
	tt := reflect.TypeFor[T]()
	assert(ta.Kind() == reflect.Array, "inline buffer type must be an array of the element type")
	assert(ta.Elem() == tt, "inline buffer element type must match the vector element type")
	assert(ta.Len() > 0, "inline buffer must hold at least one element")
	return ta.Len()
}

func (v *Vec[T, A]) inlineCap() int {
	if v.icap == 0 {
		v.icap = int32(inlineCapFor[T, A]())
	}
	return int(v.icap)
}

// inlineSlice views the inline region as a full-capacity slice. The view
// aliases the vector's own footprint and must not outlive it.
func (v *Vec[T, A]) inlineSlice() []T {
	n := v.inlineCap()
	return unsafe.Slice((*T)(unsafe.Pointer(&v.buf)), n)
}

// region returns the active storage region at full capacity. All slot
// access throughout the package goes through region (or live); no other
// code inspects the storage mode.
func (v *Vec[T, A]) region() []T {
	if v.heap != nil {
		return v.heap
	}
	return v.inlineSlice()
}

// live returns the live elements [0, n) of the active region.
func (v *Vec[T, A]) live() []T {
	return v.region()[:v.n]
}

// destroyRange resets slots [from, to) to the zero value of T, releasing
// whatever the elements referenced to the garbage collector. Destruction
// runs back to front, matching rollback order.
func destroyRange[T any](s []T, from, to int) {
	var zero T
	for i := to - 1; i >= from; i-- {
		s[i] = zero
	}
}

// Reserve guarantees capacity for at least n elements. It is a no-op if
// the current region already suffices; otherwise it relocates into a fresh
// heap region of exactly n slots. Existing views and element pointers are
// invalidated by a successful relocation.
func (v *Vec[T, A]) Reserve(n int) error {
	if n <= v.Cap() {
		return nil
	}
	return v.relocate(n)
}

// ensureCapacity guarantees capacity for at least req elements, growing by
// policy: doubling below largeSizeThreshold, 1.5× above, never less than
// req. The first promotion therefore always yields capacity > N.
func (v *Vec[T, A]) ensureCapacity(req int) error {
	capacity := v.Cap()
	if req <= capacity {
		return nil
	}
	var grown int
	if capacity > largeSizeThreshold {
		grown = capacity + capacity/2
	} else {
		grown = capacity * 2
	}
	if grown < req {
		grown = req
	}
	return v.relocate(grown)
}

// relocate allocates a region of newCap slots and transfers all live
// elements into it, in index order. Element transfer goes through Cloner
// for element types implementing it, so the old region stays intact until
// the transfer is complete: on a failed clone the already-placed elements
// are destroyed in reverse order, the fresh region goes back to the
// allocator, and the vector is exactly as before the call.
func (v *Vec[T, A]) relocate(newCap int) error {
	assert(newCap > v.inlineCap(), "relocation must leave the inline regime")
	fresh, err := v.allocator().Alloc(newCap)
	if err != nil {
		return v.fail("reserve", fmt.Errorf("%w: %w", ErrAllocFailed, err))
	}
	assert(len(fresh) >= newCap, "allocator returned an undersized region")
	old := v.live()
	for i := range old {
		elem, cerr := copyElem(old[i])
		if cerr != nil {
			destroyRange(fresh, 0, i)
			v.allocator().Free(fresh)
			return v.fail("reserve", fmt.Errorf("%w: %w", ErrElementFailed, cerr))
		}
		fresh[i] = elem
	}
	destroyRange(old, 0, v.n)
	if v.heap != nil {
		v.allocator().Free(v.heap)
	}
	v.heap = fresh
	return nil
}

// Release destroys all elements and returns an owned heap region to the
// allocation service, resetting the vector to the empty inline state. This
// is the only operation that decreases capacity. Release never fails and
// releasing an empty inline vector is a no-op.
func (v *Vec[T, A]) Release() {
	v.Clear()
	if v.heap != nil {
		v.allocator().Free(v.heap)
		v.heap = nil
	}
}
