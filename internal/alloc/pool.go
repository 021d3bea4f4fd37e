package alloc

import (
	"sync"
	"unsafe"
)

// PoolConfig controls the size-class layout of a Pool provider.
type PoolConfig struct {
	MinClassSize int // Smallest pooled slab size in bytes (power of two).
	MaxClassSize int // Largest pooled slab size in bytes (power of two).
}

// DefaultPoolConfig returns the class range used by the framework's hot paths:
// 256 B through 64 KiB, doubling per class.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MinClassSize: 256,
		MaxClassSize: 64 * 1024,
	}
}

// Pool is a size-classed provider for short-lived allocations. Slabs are
// recycled through sync.Pool per class; requests larger than the biggest
// class fall through to a plain Heap.
type Pool struct {
	cfg     PoolConfig
	classes []*sync.Pool

	mu   sync.Mutex
	live map[uintptr]poolSlab

	fallback *Heap
}

// poolSlab records where a handed-out allocation's slab starts and which
// class pool it returns to.
type poolSlab struct {
	start *byte
	class int
}

// NewPool creates a pool provider with the given configuration. Panics if the
// class bounds are not powers of two or are out of order.
func NewPool(cfg PoolConfig) *Pool {
	checkAlign(uintptr(cfg.MinClassSize))
	checkAlign(uintptr(cfg.MaxClassSize))
	if cfg.MinClassSize > cfg.MaxClassSize {
		panic("alloc: pool min class exceeds max class")
	}

	p := &Pool{
		cfg:      cfg,
		live:     make(map[uintptr]poolSlab),
		fallback: NewHeap(),
	}
	for sz := cfg.MinClassSize; sz <= cfg.MaxClassSize; sz *= 2 {
		p.classes = append(p.classes, &sync.Pool{
			New: func() any {
				b := make([]byte, sz)
				return &b[0]
			},
		})
	}
	return p
}

// classSize returns the slab size of class c.
func (p *Pool) classSize(c int) int {
	return p.cfg.MinClassSize << c
}

// classFor returns the smallest class holding need bytes, or -1 if need
// exceeds the largest class.
func (p *Pool) classFor(need uintptr) int {
	for c := range p.classes {
		if uintptr(p.classSize(c)) >= need {
			return c
		}
	}
	return -1
}

// Alloc returns size bytes aligned to align, recycled from the matching size
// class when one is available.
func (p *Pool) Alloc(size, align uintptr) unsafe.Pointer {
	checkAlign(align)
	if size == 0 {
		size = 1
	}

	// Worst-case slack so the aligned start still leaves size bytes.
	c := p.classFor(size + align - 1)
	if c < 0 {
		return p.fallback.Alloc(size, align)
	}

	start := p.classes[c].Get().(*byte)
	base := uintptr(unsafe.Pointer(start))
	addr := alignUp(base, align)
	ptr := unsafe.Add(unsafe.Pointer(start), addr-base)

	p.mu.Lock()
	p.live[addr] = poolSlab{start: start, class: c}
	p.mu.Unlock()
	return ptr
}

// Free returns p's slab to its size class, or forwards to the heap fallback
// for oversized allocations. Freeing nil is a no-op.
func (p *Pool) Free(q unsafe.Pointer) {
	if q == nil {
		return
	}
	p.mu.Lock()
	slab, ok := p.live[uintptr(q)]
	if ok {
		delete(p.live, uintptr(q))
	}
	p.mu.Unlock()

	if !ok {
		p.fallback.Free(q)
		return
	}
	p.classes[slab.class].Put(slab.start)
}

// Live returns the number of outstanding pooled allocations. Intended for
// tests.
func (p *Pool) Live() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.live)
}
