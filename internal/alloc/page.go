package alloc

import (
	"fmt"
	"os"
	"sync"
	"unsafe"
)

// Page is an off-heap provider that maps anonymous whole-page regions directly
// from the OS (platform-specific implementation in page_unix.go /
// page_other.go). Addresses are page-aligned and invisible to the garbage
// collector, so they survive address round-trips through uintptr.
type Page struct {
	pageSize uintptr

	mu      sync.Mutex
	regions map[uintptr][]byte
}

// NewPage creates a page provider using the OS page size.
func NewPage() *Page {
	return &Page{
		pageSize: uintptr(os.Getpagesize()),
		regions:  make(map[uintptr][]byte),
	}
}

// Alloc maps a region of whole pages holding size bytes. Align must not
// exceed the page size; page alignment satisfies any smaller alignment.
func (pg *Page) Alloc(size, align uintptr) unsafe.Pointer {
	checkAlign(align)
	if align > pg.pageSize {
		panic("alloc: alignment exceeds page size")
	}
	if size == 0 {
		size = 1
	}

	region, err := mapPages(int(alignUp(size, pg.pageSize)))
	if err != nil {
		panic(fmt.Sprintf("alloc: anonymous mapping failed: %v", err))
	}
	p := unsafe.Pointer(&region[0])

	pg.mu.Lock()
	pg.regions[uintptr(p)] = region
	pg.mu.Unlock()
	return p
}

// Free unmaps the region starting at p. Freeing nil is a no-op.
func (pg *Page) Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	pg.mu.Lock()
	region, ok := pg.regions[uintptr(p)]
	if ok {
		delete(pg.regions, uintptr(p))
	}
	pg.mu.Unlock()

	if !ok {
		return
	}
	if err := unmapPages(region); err != nil {
		panic(fmt.Sprintf("alloc: unmap failed: %v", err))
	}
}

// Live returns the number of mapped regions. Intended for tests.
func (pg *Page) Live() int {
	pg.mu.Lock()
	defer pg.mu.Unlock()
	return len(pg.regions)
}
