package alloc

import (
	"fmt"
	"sync"
	"unsafe"
)

// Checked wraps any Allocator with assertions against the misuse classes that
// are detectable at the allocation boundary: double free, free of a foreign
// or null pointer, and malformed requests. Violations panic with a diagnostic
// instead of silently corrupting memory.
//
// Occupancy misuse (stale reads, overwrite without release) is not detectable
// here: slots carry no runtime tag, and upholding those preconditions remains
// the caller's job.
type Checked struct {
	inner Allocator

	mu    sync.Mutex
	live  map[uintptr]uintptr
	freed map[uintptr]struct{}
}

// NewChecked wraps inner with misuse assertions.
func NewChecked(inner Allocator) *Checked {
	return &Checked{
		inner: inner,
		live:  make(map[uintptr]uintptr),
		freed: make(map[uintptr]struct{}),
	}
}

// Alloc forwards to the inner provider and registers the result.
func (c *Checked) Alloc(size, align uintptr) unsafe.Pointer {
	checkAlign(align)
	p := c.inner.Alloc(size, align)
	if p == nil {
		panic("alloc: provider returned null")
	}
	if uintptr(p)&(align-1) != 0 {
		panic(fmt.Sprintf("alloc: provider returned %#x, misaligned for %d", uintptr(p), align))
	}

	c.mu.Lock()
	c.live[uintptr(p)] = size
	// The address may be recycled by the inner provider; it is live again.
	delete(c.freed, uintptr(p))
	c.mu.Unlock()
	return p
}

// Free asserts that p is a live allocation from this provider, then forwards.
func (c *Checked) Free(p unsafe.Pointer) {
	if p == nil {
		panic("alloc: free of null pointer")
	}

	c.mu.Lock()
	_, isLive := c.live[uintptr(p)]
	_, wasFreed := c.freed[uintptr(p)]
	if isLive {
		delete(c.live, uintptr(p))
		c.freed[uintptr(p)] = struct{}{}
	}
	c.mu.Unlock()

	switch {
	case isLive:
		c.inner.Free(p)
	case wasFreed:
		panic(fmt.Sprintf("alloc: double free of %#x", uintptr(p)))
	default:
		panic(fmt.Sprintf("alloc: free of foreign pointer %#x", uintptr(p)))
	}
}

// Live returns the number of outstanding allocations. Intended for tests.
func (c *Checked) Live() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.live)
}
