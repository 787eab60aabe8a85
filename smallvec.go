package smallvec

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/smallvec/alloc"
	"github.com/npillmayer/smallvec/diag"
)

// Vec is a growable sequence of elements of type T with a small-size
// optimization: up to N elements are stored inline, within the vector's own
// footprint, before a heap region is allocated.
//
// The second type parameter A fixes the inline region and must be the array
// type [N]T with N ≥ 1, e.g.
//
//	var v smallvec.Vec[string, [4]string]
//
// A vector created by
//
//	Vec[T, A]{}
//
// is a valid object and behaves like an empty sequence with capacity N.
//
// Exactly one storage region is active at any time. The vector starts
// inline and is promoted to a heap region the first time its size would
// exceed N; it never reverts to inline storage except through Release or a
// TakeFrom that steals the heap region away. Slots beyond Len() within the
// active region hold the zero value of T.
//
// Vec is a single-threaded value type. Assigning a Vec value aliases a
// heap region instead of copying it; use Clone or CopyFrom to duplicate a
// vector, and TakeFrom to transfer ownership.
type Vec[T any, A any] struct {
	buf  A                  // inline region; A must be [N]T
	heap []T                // owned heap region; nil while inline
	n    int                // live element count
	mem  alloc.Allocator[T] // nil means alloc.Heap
	icap int32              // inline capacity N, cached from A
}

// New creates an empty vector with inline storage.
func New[T any, A any]() *Vec[T, A] {
	v := &Vec[T, A]{}
	v.inlineCap() // validates A eagerly
	return v
}

// Filled creates a vector holding n copies of fill.
//
// Element copies go through Cloner for element types implementing it; a
// failed copy or a failed allocation aborts construction.
func Filled[T any, A any](n int, fill T) (*Vec[T, A], error) {
	v := New[T, A]()
	if err := v.Resize(n, fill); err != nil {
		return nil, err
	}
	return v, nil
}

// Of creates a vector from a literal sequence of elements.
func Of[T any, A any](vals ...T) (*Vec[T, A], error) {
	v := New[T, A]()
	if err := v.PushAll(vals...); err != nil {
		return nil, err
	}
	return v, nil
}

// Len returns the number of live elements.
func (v *Vec[T, A]) Len() int {
	return v.n
}

// Cap returns the number of usable slots of the active storage region.
// While inline this is N; after promotion it is the heap region's size.
func (v *Vec[T, A]) Cap() int {
	if v.heap != nil {
		return len(v.heap)
	}
	return v.inlineCap()
}

// IsEmpty reports whether the vector has no elements.
func (v *Vec[T, A]) IsEmpty() bool {
	return v.n == 0
}

// IsInline reports whether elements currently live in the inline region.
func (v *Vec[T, A]) IsInline() bool {
	return v.heap == nil
}

// InlineCap returns N, the capacity of the inline region.
func (v *Vec[T, A]) InlineCap() int {
	return v.inlineCap()
}

// UseAllocator sets the allocation service for future heap regions.
// It may only be called while the vector is inline; a heap region must be
// released to the allocator that produced it.
func (v *Vec[T, A]) UseAllocator(mem alloc.Allocator[T]) *Vec[T, A] {
	assert(v.heap == nil, "allocator change requires inline storage")
	v.mem = mem
	return v
}

// String returns a display form of the vector, e.g. "[1 2 3]".
func (v *Vec[T, A]) String() string {
	var bf strings.Builder
	bf.WriteByte('[')
	for i, x := range v.live() {
		if i > 0 {
			bf.WriteByte(' ')
		}
		fmt.Fprintf(&bf, "%v", x)
	}
	bf.WriteByte(']')
	return bf.String()
}

// allocator returns the configured allocation service, defaulting to the
// runtime heap.
func (v *Vec[T, A]) allocator() alloc.Allocator[T] {
	if v.mem == nil {
		return alloc.Heap[T]{}
	}
	return v.mem
}

// fail traces and broadcasts a failed operation, then hands the error back
// for propagation. Diagnostics are observers only; the vector state has
// already been settled when fail is called.
func (v *Vec[T, A]) fail(op string, err error) error {
	return reportFailure(op, err)
}

// reportFailure lives outside the generic method set so that the tracer
// accessor T is not shadowed by the element type parameter.
func reportFailure(op string, err error) error {
	T().Errorf("smallvec %s: %v", op, err)
	diag.Notify(op, err)
	return err
}
