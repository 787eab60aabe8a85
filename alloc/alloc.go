/*
Package alloc is the storage allocation service used by small vectors.

An Allocator hands out contiguous element regions and takes them back.
Vectors release exactly the regions they were handed, exactly once; the
Counting wrapper in this package asserts that contract in tests, and the
Limited allocator turns allocation failure into a deterministic, testable
event instead of an out-of-memory crash.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package alloc

import "errors"

var (
	// ErrOutOfMemory signals that an allocator could not satisfy a request.
	ErrOutOfMemory = errors.New("alloc: out of storage budget")
	// ErrInvalidRequest signals a non-positive region size.
	ErrInvalidRequest = errors.New("alloc: invalid region size")
)

// Allocator hands out contiguous storage regions for elements of type T.
//
// Alloc returns a region of exactly n slots, every slot holding the zero
// value of T, or an error if the request cannot be satisfied. Free takes a
// region previously returned by Alloc on the same allocator; clients must
// pass each region to Free at most once and must not use it afterwards.
type Allocator[T any] interface {
	Alloc(n int) ([]T, error)
	Free(region []T)
}

// Heap is the default allocator, backed by the Go runtime heap.
//
// Freeing is a no-op: dropping the last reference to a region is all the
// garbage collector needs.
type Heap[T any] struct{}

// Alloc returns a fresh zeroed region of n slots.
func (Heap[T]) Alloc(n int) ([]T, error) {
	if n <= 0 {
		return nil, ErrInvalidRequest
	}
	return make([]T, n), nil
}

// Free releases a region. For the runtime heap there is nothing to do.
func (Heap[T]) Free(region []T) {}

// Limited is an allocator with a fixed slot budget. Once the sum of live
// allocations would exceed the budget, Alloc fails with ErrOutOfMemory.
//
// Limited is primarily a test collaborator: it makes allocation failure a
// deterministic event.
type Limited[T any] struct {
	Budget int // maximum number of simultaneously live slots
	used   int
}

// Alloc returns a zeroed region of n slots, or ErrOutOfMemory if the
// request would exceed the remaining budget.
func (a *Limited[T]) Alloc(n int) ([]T, error) {
	if n <= 0 {
		return nil, ErrInvalidRequest
	}
	if a.used+n > a.Budget {
		return nil, ErrOutOfMemory
	}
	a.used += n
	return make([]T, n), nil
}

// Free returns a region's slots to the budget.
func (a *Limited[T]) Free(region []T) {
	a.used -= len(region)
}

// Used returns the number of currently live slots.
func (a *Limited[T]) Used() int {
	return a.used
}

// Counting wraps an allocator and records every Alloc and Free, so tests
// can assert that each region is released exactly once.
type Counting[T any] struct {
	Inner  Allocator[T] // nil means Heap
	Allocs int
	Frees  int
	live   int // regions handed out and not yet freed
}

func (c *Counting[T]) inner() Allocator[T] {
	if c.Inner == nil {
		return Heap[T]{}
	}
	return c.Inner
}

// Alloc delegates to the inner allocator, counting successful requests.
func (c *Counting[T]) Alloc(n int) ([]T, error) {
	region, err := c.inner().Alloc(n)
	if err != nil {
		return nil, err
	}
	c.Allocs++
	c.live++
	return region, nil
}

// Free delegates to the inner allocator. Freeing more regions than were
// allocated trips an invariant panic.
func (c *Counting[T]) Free(region []T) {
	if c.live <= 0 {
		panic("alloc: Free without matching Alloc")
	}
	c.live--
	c.Frees++
	c.inner().Free(region)
}

// Live returns the number of regions currently handed out.
func (c *Counting[T]) Live() int {
	return c.live
}
