package smallvec

import (
	"testing"

	"github.com/npillmayer/smallvec/alloc"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestZeroVector(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var v Vec[int, [8]int]
	if !v.IsEmpty() || v.Len() != 0 {
		t.Errorf("zero vector should be empty, has len %d", v.Len())
	}
	if !v.IsInline() {
		t.Errorf("zero vector should be inline")
	}
	if v.Cap() != 8 {
		t.Errorf("expected capacity 8, got %d", v.Cap())
	}
	if err := v.Check(); err != nil {
		t.Error(err)
	}
}

func TestNewVector(t *testing.T) {
	v := New[string, [4]string]()
	if v.Len() != 0 || v.Cap() != 4 || !v.IsInline() {
		t.Errorf("fresh vector not empty-inline: len=%d cap=%d", v.Len(), v.Cap())
	}
	if v.InlineCap() != 4 {
		t.Errorf("expected inline capacity 4, got %d", v.InlineCap())
	}
}

func TestFilledConstructor(t *testing.T) {
	v, err := Filled[int, [4]int](5, 7)
	if err != nil {
		t.Fatal(err)
	}
	if v.Len() != 5 {
		t.Errorf("expected size 5, got %d", v.Len())
	}
	if v.Cap() < 5 {
		t.Errorf("expected capacity >= 5, got %d", v.Cap())
	}
	for i, x := range v.Slice() {
		if x != 7 {
			t.Errorf("slot %d = %d, want 7", i, x)
		}
	}
}

func TestOfConstructor(t *testing.T) {
	v, err := Of[int, [8]int](1, 2, 3, 4, 5)
	if err != nil {
		t.Fatal(err)
	}
	if v.Len() != 5 {
		t.Fatalf("expected size 5, got %d", v.Len())
	}
	for i, want := range []int{1, 2, 3, 4, 5} {
		if v.Get(i) != want {
			t.Errorf("v[%d] = %d, want %d", i, v.Get(i), want)
		}
	}
}

func TestAppendReadsBackInOrder(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	v := New[int, [4]int]()
	const k = 100
	for i := 0; i < k; i++ {
		if err := v.Push(i); err != nil {
			t.Fatalf("push %d: %v", i, err)
		}
		if err := v.Check(); err != nil {
			t.Fatal(err)
		}
	}
	if v.Len() != k {
		t.Fatalf("expected size %d, got %d", k, v.Len())
	}
	for i := 0; i < k; i++ {
		if v.Get(i) != i {
			t.Errorf("v[%d] = %d, want %d", i, v.Get(i), i)
		}
	}
}

func TestPromotionAtInlineOverflow(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	mem := &alloc.Counting[int]{}
	v := New[int, [4]int]().UseAllocator(mem)
	for i := 0; i < 4; i++ {
		if err := v.Push(i); err != nil {
			t.Fatal(err)
		}
	}
	if !v.IsInline() {
		t.Fatalf("4 elements should still be inline")
	}
	if mem.Allocs != 0 {
		t.Fatalf("inline fill must not allocate, did %d times", mem.Allocs)
	}
	// push 4 → heap-resident, size 5, capacity > 4, values [0 1 2 3 4]
	if err := v.Push(4); err != nil {
		t.Fatal(err)
	}
	if v.IsInline() {
		t.Errorf("element 5 should have promoted to heap storage")
	}
	if v.Len() != 5 {
		t.Errorf("expected size 5, got %d", v.Len())
	}
	if v.Cap() <= 4 {
		t.Errorf("heap capacity must exceed inline capacity, is %d", v.Cap())
	}
	if mem.Allocs != 1 {
		t.Errorf("expected exactly one promotion, got %d allocations", mem.Allocs)
	}
	for i := 0; i <= 4; i++ {
		if v.Get(i) != i {
			t.Errorf("v[%d] = %d, want %d", i, v.Get(i), i)
		}
	}
	if err := v.Check(); err != nil {
		t.Error(err)
	}
}

func TestCapacityNeverShrinksUnderMutation(t *testing.T) {
	v := New[int, [2]int]()
	last := v.Cap()
	for i := 0; i < 50; i++ {
		if err := v.Push(i); err != nil {
			t.Fatal(err)
		}
		if v.Cap() < last {
			t.Fatalf("capacity shrank from %d to %d", last, v.Cap())
		}
		last = v.Cap()
	}
	v.Clear()
	if v.Cap() != last {
		t.Errorf("Clear changed capacity from %d to %d", last, v.Cap())
	}
	for v.Len() > 0 {
		v.Pop()
	}
	if v.Cap() != last {
		t.Errorf("Pop changed capacity from %d to %d", last, v.Cap())
	}
}

func TestReleaseResetsToInline(t *testing.T) {
	v := New[int, [2]int]()
	for i := 0; i < 10; i++ {
		if err := v.Push(i); err != nil {
			t.Fatal(err)
		}
	}
	if v.IsInline() {
		t.Fatalf("10 elements cannot be inline with capacity 2")
	}
	v.Release()
	if !v.IsInline() || v.Len() != 0 || v.Cap() != 2 {
		t.Errorf("Release should reset to empty-inline: len=%d cap=%d inline=%v",
			v.Len(), v.Cap(), v.IsInline())
	}
}

func TestStringRendering(t *testing.T) {
	v, err := Of[int, [4]int](1, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "[1 2 3]" {
		t.Errorf("expected '[1 2 3]', got '%s'", v.String())
	}
	empty := New[int, [4]int]()
	if empty.String() != "[]" {
		t.Errorf("expected '[]', got '%s'", empty.String())
	}
}

func TestStringElements(t *testing.T) {
	v := New[string, [2]string]()
	words := []string{"the", "quick", "brown", "fox", "jumps"}
	for _, w := range words {
		if err := v.Push(w); err != nil {
			t.Fatal(err)
		}
	}
	if v.Len() != len(words) {
		t.Fatalf("expected %d elements, got %d", len(words), v.Len())
	}
	for i, w := range words {
		if v.Get(i) != w {
			t.Errorf("v[%d] = %q, want %q", i, v.Get(i), w)
		}
	}
}
