package alloc

import "testing"

// Benchmarks compare provider hot paths; the pool should amortize slab reuse
// against the heap's pin-table churn.

func BenchmarkHeapAllocFree(b *testing.B) {
	heap := NewHeap()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p := heap.Alloc(1024, 8)
		heap.Free(p)
	}
}

func BenchmarkPoolAllocFree(b *testing.B) {
	pool := NewPool(DefaultPoolConfig())
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p := pool.Alloc(1024, 8)
		pool.Free(p)
	}
}

func BenchmarkTracedOverhead(b *testing.B) {
	traced := NewTraced(NewHeap(), nil, DefaultTracedConfig())
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p := traced.Alloc(1024, 8)
		traced.Free(p)
	}
}
