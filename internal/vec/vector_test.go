package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/born-ml/memkit/internal/alloc"
	"github.com/born-ml/memkit/internal/arena"
)

func TestVectorAppendGet(t *testing.T) {
	v := New[int64](alloc.NewHeap())
	defer v.Release()

	for i := int64(0); i < 100; i++ {
		v.Append(i * 10)
	}
	require.Equal(t, 100, v.Len())
	for i := 0; i < 100; i++ {
		assert.Equal(t, int64(i*10), v.Get(i))
	}
}

func TestVectorGrowthPreservesOrder(t *testing.T) {
	v := WithCapacity[int32](alloc.NewHeap(), 2)
	require.Equal(t, 2, v.Cap())

	for i := int32(0); i < 50; i++ {
		v.Append(i)
	}
	assert.GreaterOrEqual(t, v.Cap(), 50)
	for i := 0; i < 50; i++ {
		require.Equal(t, int32(i), v.Get(i))
	}
	v.Release()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Cap())
}

func TestVectorPop(t *testing.T) {
	v := New[int64](alloc.NewHeap())
	defer v.Release()

	v.Append(1)
	v.Append(2)
	v.Append(3)

	assert.Equal(t, int64(3), v.Pop())
	assert.Equal(t, int64(2), v.Pop())
	assert.Equal(t, 1, v.Len())

	// Popped slots are reusable.
	v.Append(9)
	assert.Equal(t, int64(9), v.Pop())
	assert.Equal(t, int64(1), v.Pop())
	assert.Panics(t, func() { v.Pop() })
}

func TestVectorRemoveCompacts(t *testing.T) {
	v := New[int64](alloc.NewHeap())
	defer v.Release()

	for i := int64(0); i < 6; i++ {
		v.Append(i)
	}

	assert.Equal(t, int64(2), v.Remove(2))
	require.Equal(t, 5, v.Len())
	want := []int64{0, 1, 3, 4, 5}
	for i, w := range want {
		assert.Equal(t, w, v.Get(i), "index %d after removal", i)
	}

	// Removing the last element shifts nothing.
	assert.Equal(t, int64(5), v.Remove(v.Len()-1))
	assert.Equal(t, 4, v.Len())
}

func TestVectorSetAndRef(t *testing.T) {
	v := New[float64](alloc.NewHeap())
	defer v.Release()

	v.Append(1.5)
	v.Append(2.5)

	v.Set(0, 10.0)
	assert.Equal(t, 10.0, v.Get(0))

	*v.Ref(1) *= 2
	assert.Equal(t, 5.0, v.Get(1))
}

func TestVectorBoundsChecks(t *testing.T) {
	v := New[int64](alloc.NewHeap())
	defer v.Release()
	v.Append(1)

	assert.Panics(t, func() { v.Get(1) })
	assert.Panics(t, func() { v.Get(-1) })
	assert.Panics(t, func() { v.Set(1, 0) })
	assert.Panics(t, func() { v.Remove(1) })
	assert.Panics(t, func() { _ = WithCapacity[int64](alloc.NewHeap(), -1) })
}

func TestVectorStructElements(t *testing.T) {
	type entry struct {
		key   [8]byte
		count int64
	}
	v := New[entry](alloc.NewHeap())
	defer v.Release()

	v.Append(entry{key: [8]byte{'a'}, count: 1})
	v.Append(entry{key: [8]byte{'b'}, count: 2})

	v.Ref(0).count++
	assert.Equal(t, int64(2), v.Get(0).count)
	assert.Equal(t, byte('b'), v.Get(1).key[0])
}

func TestVectorReleasesAllMemory(t *testing.T) {
	traced := alloc.NewTraced(alloc.NewHeap(), zap.NewNop(), alloc.DefaultTracedConfig())

	v := New[int64](traced)
	for i := int64(0); i < 1000; i++ {
		v.Append(i) // several relocations along the way
	}
	v.Release()

	require.NoError(t, traced.LeakCheck())
}

func TestVectorOnArena(t *testing.T) {
	// A vector drawing from an arena: grow leaves the old slots to the arena,
	// and the whole structure vanishes on arena release.
	parent := alloc.NewTraced(alloc.NewHeap(), zap.NewNop(), alloc.DefaultTracedConfig())
	a := arena.New(parent)

	v := New[int64](a)
	for i := int64(0); i < 64; i++ {
		v.Append(i)
	}
	for i := 0; i < 64; i++ {
		require.Equal(t, int64(i), v.Get(i))
	}

	a.Release()
	require.NoError(t, parent.LeakCheck())
}
