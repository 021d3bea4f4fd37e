// Package arena provides a bump allocation provider over block allocations
// from a parent provider.
package arena

import (
	"unsafe"

	"github.com/born-ml/memkit/internal/alloc"
)

// DefaultBlockSize is the block size used by New.
const DefaultBlockSize = 64 * 1024

// Arena is a bump allocator implementing alloc.Allocator. Allocations are
// carved from fixed-size blocks obtained from a parent provider; individual
// Free calls are no-ops, and memory is reclaimed wholesale via Reset or
// Release. Requests larger than the block size get a dedicated block.
//
// An Arena is not safe for concurrent use.
type Arena struct {
	parent    alloc.Allocator
	blockSize uintptr
	blocks    []block
	cur       int // index into blocks, -1 when empty
}

// block is one parent allocation with a bump offset.
type block struct {
	base unsafe.Pointer
	off  uintptr
	size uintptr
}

// New creates an arena drawing DefaultBlockSize blocks from parent.
func New(parent alloc.Allocator) *Arena {
	return NewWithBlockSize(parent, DefaultBlockSize)
}

// NewWithBlockSize creates an arena with the given block size in bytes.
// Panics if blockSize is not positive.
func NewWithBlockSize(parent alloc.Allocator, blockSize int) *Arena {
	if blockSize <= 0 {
		panic("arena: block size must be positive")
	}
	return &Arena{
		parent:    parent,
		blockSize: uintptr(blockSize),
		cur:       -1,
	}
}

// Alloc bumps the current block, starting a new one when the request does not
// fit. Align must be a power of two no larger than the parent's block
// alignment guarantee.
func (a *Arena) Alloc(size, align uintptr) unsafe.Pointer {
	if size == 0 {
		size = 1
	}

	for a.cur >= 0 {
		if p := a.blocks[a.cur].bump(size, align); p != nil {
			return p
		}
		if a.cur+1 >= len(a.blocks) {
			break
		}
		// Recycled blocks from a Reset are refilled before growing.
		a.cur++
	}

	blockSize := a.blockSize
	if size+align-1 > blockSize {
		blockSize = size + align - 1
	}
	a.blocks = append(a.blocks, block{
		base: a.parent.Alloc(blockSize, align),
		size: blockSize,
	})
	a.cur = len(a.blocks) - 1
	return a.blocks[a.cur].bump(size, align)
}

// bump carves size bytes at align from b, or returns nil when b is full.
func (b *block) bump(size, align uintptr) unsafe.Pointer {
	base := uintptr(b.base)
	start := (base+b.off+align-1)&^(align-1) - base
	if start+size > b.size {
		return nil
	}
	b.off = start + size
	return unsafe.Add(b.base, start)
}

// Free is a no-op: arena memory is reclaimed by Reset or Release.
func (a *Arena) Free(p unsafe.Pointer) {
	_ = p
}

// Reset rewinds every block for reuse without returning memory to the parent.
// All addresses handed out so far become dangling.
func (a *Arena) Reset() {
	for i := range a.blocks {
		a.blocks[i].off = 0
	}
	if len(a.blocks) > 0 {
		a.cur = 0
	}
}

// Release returns every block to the parent provider. The arena is empty and
// usable afterwards.
func (a *Arena) Release() {
	for _, b := range a.blocks {
		a.parent.Free(b.base)
	}
	a.blocks = nil
	a.cur = -1
}

// Blocks returns the number of blocks currently held. Intended for tests.
func (a *Arena) Blocks() int {
	return len(a.blocks)
}
