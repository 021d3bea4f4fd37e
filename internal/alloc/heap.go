package alloc

import (
	"sync"
	"unsafe"
)

// Heap is the default allocation provider, backed by the Go runtime heap.
//
// Each allocation over-allocates a byte slab, aligns the start address, and
// pins the slab in an internal table keyed by that address. Pinning keeps the
// garbage collector from reclaiming live allocations that are otherwise only
// reachable through raw addresses; Free unpins the slab.
//
// The pinned slabs are untyped bytes: the collector does not scan them. Values
// stored through ptr.Ptr that themselves contain Go pointers must be kept
// reachable elsewhere for as long as they live in the slab.
type Heap struct {
	mu    sync.Mutex
	slabs map[uintptr][]byte
}

// NewHeap creates an empty heap provider.
func NewHeap() *Heap {
	return &Heap{slabs: make(map[uintptr][]byte)}
}

// Alloc returns size bytes aligned to align. Zero-size requests are rounded up
// to one byte so the result is always a distinct, non-nil address.
func (h *Heap) Alloc(size, align uintptr) unsafe.Pointer {
	checkAlign(align)
	if size == 0 {
		size = 1
	}

	slab := make([]byte, size+align-1)
	base := uintptr(unsafe.Pointer(&slab[0]))
	p := unsafe.Pointer(&slab[alignUp(base, align)-base])

	h.mu.Lock()
	h.slabs[uintptr(p)] = slab
	h.mu.Unlock()
	return p
}

// Free unpins the slab backing p. Freeing nil is a no-op; freeing an address
// this provider never returned is silently ignored (wrap in Checked to catch
// it).
func (h *Heap) Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	h.mu.Lock()
	delete(h.slabs, uintptr(p))
	h.mu.Unlock()
}

// Live returns the number of pinned allocations. Intended for tests.
func (h *Heap) Live() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.slabs)
}
