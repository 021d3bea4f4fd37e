package alloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolAlignment(t *testing.T) {
	pool := NewPool(DefaultPoolConfig())

	for _, align := range []uintptr{1, 8, 64, 128} {
		p := pool.Alloc(300, align)
		require.NotNil(t, p)
		assert.Zero(t, uintptr(p)&(align-1), "address %#x not aligned to %d", uintptr(p), align)
		pool.Free(p)
	}
	assert.Equal(t, 0, pool.Live())
}

func TestPoolDistinctAllocationsDoNotOverlap(t *testing.T) {
	pool := NewPool(DefaultPoolConfig())
	const size = 512

	a := pool.Alloc(size, 8)
	b := pool.Alloc(size, 8)
	defer pool.Free(a)
	defer pool.Free(b)

	require.NotEqual(t, uintptr(a), uintptr(b))

	sa := unsafe.Slice((*byte)(a), size)
	sb := unsafe.Slice((*byte)(b), size)
	for i := range sa {
		sa[i] = 0xAA
	}
	for i := range sb {
		sb[i] = 0x55
	}
	assert.Equal(t, byte(0xAA), sa[size-1])
	assert.Equal(t, byte(0x55), sb[size-1])
}

func TestPoolOversizedFallsThrough(t *testing.T) {
	cfg := DefaultPoolConfig()
	pool := NewPool(cfg)

	p := pool.Alloc(uintptr(cfg.MaxClassSize)*2, 8)
	require.NotNil(t, p)

	// Oversized allocations are not tracked as pooled slabs.
	assert.Equal(t, 0, pool.Live())
	pool.Free(p)
}

func TestPoolReuseKeepsSizeClassIntegrity(t *testing.T) {
	pool := NewPool(DefaultPoolConfig())

	// Cycle allocations through a class and make sure every handed-out range
	// is fully writable at its requested size.
	for i := 0; i < 64; i++ {
		p := pool.Alloc(1000, 8)
		b := unsafe.Slice((*byte)(p), 1000)
		b[0], b[999] = 1, 2
		pool.Free(p)
	}
	assert.Equal(t, 0, pool.Live())
}

func TestPoolBadConfigPanics(t *testing.T) {
	assert.Panics(t, func() { NewPool(PoolConfig{MinClassSize: 300, MaxClassSize: 1024}) })
	assert.Panics(t, func() { NewPool(PoolConfig{MinClassSize: 1024, MaxClassSize: 256}) })
}
