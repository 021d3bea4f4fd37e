package alloc

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"go.uber.org/zap"
)

// ErrLeak reports outstanding allocations at a leak check.
var ErrLeak = errors.New("alloc: outstanding allocations at leak check")

// Stats is a snapshot of a Traced provider's accounting.
type Stats struct {
	Allocs    uint64 // Total Alloc calls.
	Frees     uint64 // Total Free calls (nil frees excluded).
	Live      uint64 // Currently outstanding allocations.
	LiveBytes uint64 // Bytes held by outstanding allocations.
	PeakBytes uint64 // High-water mark of LiveBytes.
}

// TracedConfig controls the logging behavior of a Traced provider.
type TracedConfig struct {
	LogEach bool // Log every Alloc/Free at debug level, not just accounting.
}

// DefaultTracedConfig returns accounting-only tracing.
func DefaultTracedConfig() TracedConfig {
	return TracedConfig{LogEach: false}
}

// Traced wraps any Allocator with structured logging and outstanding-byte
// accounting. It adds one lock acquisition per operation and is intended for
// development builds and tests; production hot paths use the inner provider
// directly.
type Traced struct {
	inner Allocator
	log   *zap.Logger
	cfg   TracedConfig

	mu    sync.Mutex
	sizes map[uintptr]uintptr
	stats Stats
}

// NewTraced wraps inner with tracing. A nil logger disables log output but
// keeps accounting.
func NewTraced(inner Allocator, log *zap.Logger, cfg TracedConfig) *Traced {
	if log == nil {
		log = zap.NewNop()
	}
	return &Traced{
		inner: inner,
		log:   log,
		cfg:   cfg,
		sizes: make(map[uintptr]uintptr),
	}
}

// Alloc forwards to the inner provider and records the allocation.
func (t *Traced) Alloc(size, align uintptr) unsafe.Pointer {
	p := t.inner.Alloc(size, align)

	t.mu.Lock()
	t.sizes[uintptr(p)] = size
	t.stats.Allocs++
	t.stats.Live++
	t.stats.LiveBytes += uint64(size)
	if t.stats.LiveBytes > t.stats.PeakBytes {
		t.stats.PeakBytes = t.stats.LiveBytes
	}
	t.mu.Unlock()

	if t.cfg.LogEach {
		t.log.Debug("alloc",
			zap.Uintptr("addr", uintptr(p)),
			zap.Uint64("size", uint64(size)),
			zap.Uint64("align", uint64(align)),
		)
	}
	return p
}

// Free records the release and forwards to the inner provider.
func (t *Traced) Free(p unsafe.Pointer) {
	if p == nil {
		t.inner.Free(p)
		return
	}

	t.mu.Lock()
	size, known := t.sizes[uintptr(p)]
	if known {
		delete(t.sizes, uintptr(p))
		t.stats.Live--
		t.stats.LiveBytes -= uint64(size)
	}
	t.stats.Frees++
	t.mu.Unlock()

	if !known {
		t.log.Warn("free of untracked pointer", zap.Uintptr("addr", uintptr(p)))
	} else if t.cfg.LogEach {
		t.log.Debug("free",
			zap.Uintptr("addr", uintptr(p)),
			zap.Uint64("size", uint64(size)),
		)
	}
	t.inner.Free(p)
}

// Stats returns a snapshot of the accounting counters.
func (t *Traced) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}

// LeakCheck returns nil when every allocation has been freed, and a wrapped
// ErrLeak describing the outstanding set otherwise. Outstanding allocations
// are also logged at error level.
func (t *Traced) LeakCheck() error {
	t.mu.Lock()
	live, bytes := t.stats.Live, t.stats.LiveBytes
	t.mu.Unlock()

	if live == 0 {
		return nil
	}
	t.log.Error("allocation leak detected",
		zap.Uint64("live", live),
		zap.Uint64("bytes", bytes),
	)
	return fmt.Errorf("%w: %d allocations, %d bytes", ErrLeak, live, bytes)
}
