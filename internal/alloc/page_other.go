//go:build !unix

package alloc

import (
	"os"
	"unsafe"
)

// mapPages allocates zeroed pseudo-pages on the Go heap for platforms without
// anonymous mmap. The slab start is aligned up to a page boundary; the
// returned subslice pins the whole backing slab through the Page region table,
// so addresses stay valid until unmapPages.
func mapPages(length int) ([]byte, error) {
	pageSize := uintptr(os.Getpagesize())
	slab := make([]byte, uintptr(length)+pageSize-1)
	base := uintptr(unsafe.Pointer(&slab[0]))
	off := alignUp(base, pageSize) - base
	return slab[off : off+uintptr(length)], nil
}

// unmapPages releases a region returned by mapPages. The heap fallback leaves
// reclamation to the garbage collector.
func unmapPages(region []byte) error {
	_ = region
	return nil
}
