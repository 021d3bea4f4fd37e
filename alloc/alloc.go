// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package alloc

import (
	"go.uber.org/zap"

	"github.com/born-ml/memkit/internal/alloc"
)

// Allocator is the aligned allocate/free capability. Align must be a power of
// two; allocation failure panics rather than returning an error.
type Allocator = alloc.Allocator

// ErrLeak reports outstanding allocations at a Traced leak check.
var ErrLeak = alloc.ErrLeak

// Heap is the default provider on the Go runtime heap.
type Heap = alloc.Heap

// NewHeap creates an empty heap provider.
func NewHeap() *Heap {
	return alloc.NewHeap()
}

// Pool is a size-classed provider recycling slabs through sync.Pool.
type Pool = alloc.Pool

// PoolConfig controls a Pool's size-class layout.
type PoolConfig = alloc.PoolConfig

// DefaultPoolConfig returns the standard 256 B – 64 KiB class range.
func DefaultPoolConfig() PoolConfig {
	return alloc.DefaultPoolConfig()
}

// NewPool creates a pool provider with the given configuration.
func NewPool(cfg PoolConfig) *Pool {
	return alloc.NewPool(cfg)
}

// Page is an off-heap provider mapping anonymous whole-page regions.
type Page = alloc.Page

// NewPage creates a page provider using the OS page size.
func NewPage() *Page {
	return alloc.NewPage()
}

// Traced wraps any provider with structured logging and accounting.
type Traced = alloc.Traced

// TracedConfig controls a Traced provider's logging behavior.
type TracedConfig = alloc.TracedConfig

// Stats is a snapshot of a Traced provider's accounting.
type Stats = alloc.Stats

// DefaultTracedConfig returns accounting-only tracing.
func DefaultTracedConfig() TracedConfig {
	return alloc.DefaultTracedConfig()
}

// NewTraced wraps inner with tracing. A nil logger disables log output but
// keeps accounting.
func NewTraced(inner Allocator, log *zap.Logger, cfg TracedConfig) *Traced {
	return alloc.NewTraced(inner, log, cfg)
}

// Checked wraps any provider with assertions against allocation-boundary
// misuse (double free, foreign free, malformed requests).
type Checked = alloc.Checked

// NewChecked wraps inner with misuse assertions.
func NewChecked(inner Allocator) *Checked {
	return alloc.NewChecked(inner)
}
