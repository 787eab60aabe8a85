package smallvec

import "testing"

func BenchmarkPushInline(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var v Vec[int, [16]int]
		for k := 0; k < 16; k++ {
			_ = v.Push(k)
		}
	}
}

func BenchmarkPushWithPromotion(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var v Vec[int, [16]int]
		for k := 0; k < 256; k++ {
			_ = v.Push(k)
		}
	}
}

func BenchmarkPushSliceBaseline(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var s []int
		for k := 0; k < 16; k++ {
			s = append(s, k)
		}
		_ = s
	}
}

func BenchmarkSwapHeap(b *testing.B) {
	x := New[int, [4]int]()
	y := New[int, [4]int]()
	for i := 0; i < 100; i++ {
		_ = x.Push(i)
		_ = y.Push(100 + i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Swap(y)
	}
}

func BenchmarkIterate(b *testing.B) {
	v := New[int, [16]int]()
	for i := 0; i < 1000; i++ {
		_ = v.Push(i)
	}
	b.ResetTimer()
	sum := 0
	for i := 0; i < b.N; i++ {
		for _, x := range v.All() {
			sum += x
		}
	}
	_ = sum
}
