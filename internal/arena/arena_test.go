package arena

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/born-ml/memkit/internal/alloc"
)

func TestArenaBumpAlignment(t *testing.T) {
	a := New(alloc.NewHeap())
	defer a.Release()

	// Interleave odd sizes with strict alignments.
	_ = a.Alloc(3, 1)
	for _, align := range []uintptr{2, 4, 8, 16, 64} {
		p := a.Alloc(24, align)
		require.NotNil(t, p)
		assert.Zero(t, uintptr(p)&(align-1), "address %#x not aligned to %d", uintptr(p), align)
		_ = a.Alloc(5, 1)
	}
}

func TestArenaAllocationsDoNotOverlap(t *testing.T) {
	a := NewWithBlockSize(alloc.NewHeap(), 256)
	defer a.Release()

	ptrs := make([]unsafe.Pointer, 0, 32)
	for i := 0; i < 32; i++ {
		p := a.Alloc(16, 8)
		for _, q := range ptrs {
			d := uintptr(p) - uintptr(q)
			if uintptr(q) > uintptr(p) {
				d = uintptr(q) - uintptr(p)
			}
			require.True(t, d >= 16, "allocations %#x and %#x overlap", uintptr(p), uintptr(q))
		}
		ptrs = append(ptrs, p)
	}
	assert.Greater(t, a.Blocks(), 1, "32×16 bytes must not fit one 256-byte block")
}

func TestArenaLargeRequestGetsDedicatedBlock(t *testing.T) {
	a := NewWithBlockSize(alloc.NewHeap(), 128)
	defer a.Release()

	p := a.Alloc(1024, 8)
	require.NotNil(t, p)

	b := unsafe.Slice((*byte)(p), 1024)
	b[0], b[1023] = 1, 2
	assert.Equal(t, byte(2), b[1023])
}

func TestArenaResetReusesBlocks(t *testing.T) {
	a := NewWithBlockSize(alloc.NewHeap(), 256)
	defer a.Release()

	for i := 0; i < 16; i++ {
		_ = a.Alloc(32, 8)
	}
	blocks := a.Blocks()
	require.Greater(t, blocks, 1)

	a.Reset()
	for i := 0; i < 16; i++ {
		_ = a.Alloc(32, 8)
	}
	assert.Equal(t, blocks, a.Blocks(), "reset blocks should be refilled, not regrown")
}

func TestArenaReleaseReturnsEverythingToParent(t *testing.T) {
	parent := alloc.NewTraced(alloc.NewHeap(), zap.NewNop(), alloc.DefaultTracedConfig())
	a := New(parent)

	for i := 0; i < 100; i++ {
		_ = a.Alloc(512, 8)
	}
	require.Error(t, parent.LeakCheck())

	a.Release()
	require.NoError(t, parent.LeakCheck())

	// The arena is usable again after Release.
	p := a.Alloc(8, 8)
	require.NotNil(t, p)
	a.Release()
	require.NoError(t, parent.LeakCheck())
}

func TestArenaFreeIsNoOp(t *testing.T) {
	a := New(alloc.NewHeap())
	defer a.Release()

	p := a.Alloc(64, 8)
	a.Free(p) // must not disturb the bump state
	q := a.Alloc(64, 8)
	assert.NotEqual(t, uintptr(p), uintptr(q))
}

func TestArenaBadBlockSizePanics(t *testing.T) {
	assert.Panics(t, func() { NewWithBlockSize(alloc.NewHeap(), 0) })
}

func BenchmarkArenaAlloc(b *testing.B) {
	a := New(alloc.NewHeap())
	defer a.Release()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = a.Alloc(64, 8)
		if i%1024 == 1023 {
			a.Reset()
		}
	}
}
