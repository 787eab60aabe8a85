package alloc

import (
	"errors"
	"testing"
)

func TestHeapAlloc(t *testing.T) {
	var mem Heap[int]
	region, err := mem.Alloc(8)
	if err != nil {
		t.Fatalf("unexpected Alloc error: %v", err)
	}
	if len(region) != 8 {
		t.Errorf("expected 8 slots, got %d", len(region))
	}
	for i, x := range region {
		if x != 0 {
			t.Errorf("slot %d not zeroed: %d", i, x)
		}
	}
	mem.Free(region)
}

func TestHeapRejectsInvalidRequest(t *testing.T) {
	var mem Heap[int]
	if _, err := mem.Alloc(0); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest for size 0, got %v", err)
	}
	if _, err := mem.Alloc(-3); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest for negative size, got %v", err)
	}
}

func TestLimitedBudget(t *testing.T) {
	mem := &Limited[byte]{Budget: 10}
	a, err := mem.Alloc(6)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := mem.Alloc(6); !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("expected ErrOutOfMemory beyond budget, got %v", err)
	}
	if mem.Used() != 6 {
		t.Errorf("failed allocation must not consume budget, used=%d", mem.Used())
	}
	mem.Free(a)
	if mem.Used() != 0 {
		t.Errorf("free should return slots to the budget, used=%d", mem.Used())
	}
	if _, err := mem.Alloc(10); err != nil {
		t.Errorf("full budget should be available again: %v", err)
	}
}

func TestCountingTracksRegions(t *testing.T) {
	mem := &Counting[int]{}
	a, err := mem.Alloc(4)
	if err != nil {
		t.Fatal(err)
	}
	b, err := mem.Alloc(8)
	if err != nil {
		t.Fatal(err)
	}
	if mem.Allocs != 2 || mem.Live() != 2 {
		t.Errorf("allocs=%d live=%d, want 2/2", mem.Allocs, mem.Live())
	}
	mem.Free(a)
	mem.Free(b)
	if mem.Frees != 2 || mem.Live() != 0 {
		t.Errorf("frees=%d live=%d, want 2/0", mem.Frees, mem.Live())
	}
}

func TestCountingPanicsOnDoubleFree(t *testing.T) {
	mem := &Counting[int]{}
	region, err := mem.Alloc(4)
	if err != nil {
		t.Fatal(err)
	}
	mem.Free(region)
	defer func() {
		if recover() == nil {
			t.Errorf("freeing more regions than allocated should panic")
		}
	}()
	mem.Free(region)
}

func TestCountingPropagatesInnerFailure(t *testing.T) {
	mem := &Counting[int]{Inner: &Limited[int]{Budget: 2}}
	if _, err := mem.Alloc(4); !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("expected the inner allocator's error, got %v", err)
	}
	if mem.Allocs != 0 || mem.Live() != 0 {
		t.Errorf("failed allocation must not be counted: allocs=%d live=%d",
			mem.Allocs, mem.Live())
	}
}
