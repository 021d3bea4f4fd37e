// Package alloc provides the allocation providers underpinning memkit's
// owning-pointer primitives.
package alloc

import "unsafe"

// Allocator is the aligned raw-memory capability consumed by ptr.Ptr and the
// containers built on it.
//
// Alloc returns the start of a byte range of at least size bytes whose address
// is a multiple of align. Align must be a power of two. Allocation failure is
// not a reported error: providers panic if the runtime or OS refuses memory.
//
// Free releases a range previously returned by Alloc on the same provider.
// Passing any other pointer, or the same pointer twice, is undefined behavior
// unless the provider is wrapped in a Checked middleware.
type Allocator interface {
	Alloc(size, align uintptr) unsafe.Pointer
	Free(p unsafe.Pointer)
}

// alignUp rounds addr up to the next multiple of align (align is a power of two).
func alignUp(addr, align uintptr) uintptr {
	return (addr + align - 1) &^ (align - 1)
}

// checkAlign panics unless align is a non-zero power of two.
func checkAlign(align uintptr) {
	if align == 0 || align&(align-1) != 0 {
		panic("alloc: alignment must be a non-zero power of two")
	}
}
