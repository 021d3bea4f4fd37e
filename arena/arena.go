// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package arena provides bump allocation over blocks from a parent provider.
//
// An Arena implements alloc.Allocator, so pointers and containers draw from
// it like any other provider; individual frees are no-ops and memory is
// reclaimed wholesale with Reset or Release. This trades per-allocation
// bookkeeping for bulk lifetime management, the usual shape for per-batch or
// per-request scratch memory.
//
// Example:
//
//	heap := alloc.NewHeap()
//	a := arena.New(heap)
//	defer a.Release()
//
//	scratch := ptr.Alloc[float32](a, 4096)
//	// ... use scratch; no individual Free needed ...
//	a.Reset() // next batch reuses the same blocks
package arena

import (
	"github.com/born-ml/memkit/internal/alloc"
	"github.com/born-ml/memkit/internal/arena"
)

// DefaultBlockSize is the block size used by New.
const DefaultBlockSize = arena.DefaultBlockSize

// Arena is a bump allocation provider. Not safe for concurrent use.
type Arena = arena.Arena

// New creates an arena drawing DefaultBlockSize blocks from parent.
func New(parent alloc.Allocator) *Arena {
	return arena.New(parent)
}

// NewWithBlockSize creates an arena with the given block size in bytes.
func NewWithBlockSize(parent alloc.Allocator, blockSize int) *Arena {
	return arena.NewWithBlockSize(parent, blockSize)
}
