// Package vec provides a dynamic array built on the owning pointer primitive.
package vec

import (
	"fmt"

	"github.com/born-ml/memkit/internal/alloc"
	"github.com/born-ml/memkit/internal/ptr"
)

// initialCapacity is the slot count of the first allocation.
const initialCapacity = 4

// Vector is a growable array of T backed by provider-allocated slots and
// driven entirely through ptr.Ptr operations. It is the checked layer the
// unchecked pointer is designed to sit beneath: indices are bounds-checked,
// and slot occupancy is tracked by length so every pointer precondition holds
// by construction.
//
// A Vector is not safe for concurrent use. Release must be called to return
// the backing memory to the provider.
type Vector[T any] struct {
	data     ptr.Ptr[T]
	len, cap int
	alloc    alloc.Allocator
}

// New creates an empty vector drawing memory from a.
func New[T any](a alloc.Allocator) *Vector[T] {
	return &Vector[T]{alloc: a}
}

// WithCapacity creates an empty vector with room for n elements before the
// first relocation. Panics if n is negative.
func WithCapacity[T any](a alloc.Allocator, n int) *Vector[T] {
	if n < 0 {
		panic("vec: negative capacity")
	}
	v := &Vector[T]{alloc: a}
	if n > 0 {
		v.data = ptr.Alloc[T](a, n)
		v.cap = n
	}
	return v
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.len }

// Cap returns the allocated slot count.
func (v *Vector[T]) Cap() int { return v.cap }

// Append adds x at the end, relocating to a larger allocation when full.
func (v *Vector[T]) Append(x T) {
	if v.len == v.cap {
		v.grow()
	}
	v.data.Offset(v.len).Emplace(x)
	v.len++
}

// grow relocates every element into a doubled allocation using the two-step
// take/emplace path, then frees the old slots.
func (v *Vector[T]) grow() {
	newCap := v.cap * 2
	if newCap < initialCapacity {
		newCap = initialCapacity
	}
	next := ptr.Alloc[T](v.alloc, newCap)
	for i := 0; i < v.len; i++ {
		next.Offset(i).Emplace(v.data.Offset(i).Take())
	}
	if !v.data.IsNull() {
		v.data.Free(v.alloc)
	}
	v.data = next
	v.cap = newCap
}

// Pop removes and returns the last element. Panics on an empty vector.
func (v *Vector[T]) Pop() T {
	if v.len == 0 {
		panic("vec: pop from empty vector")
	}
	v.len--
	return v.data.Offset(v.len).Take()
}

// Remove deletes the element at index i and returns it, shifting the tail
// down one slot. Each shifted element relocates with a single fused move.
func (v *Vector[T]) Remove(i int) T {
	v.check(i)
	out := v.data.Offset(i).Take()
	for j := i; j < v.len-1; j++ {
		v.data.Offset(j + 1).MoveInto(v.data.Offset(j))
	}
	v.len--
	return out
}

// Get returns a copy of the element at index i.
func (v *Vector[T]) Get(i int) T {
	v.check(i)
	return *v.data.At(i)
}

// Set overwrites the element at index i in place.
func (v *Vector[T]) Set(i int, x T) {
	v.check(i)
	*v.data.At(i) = x
}

// Ref returns a borrowed alias of the element at index i for in-place
// mutation. The alias is invalidated by any operation that relocates or
// releases the backing slots (Append growth, Remove, Release).
func (v *Vector[T]) Ref(i int) *T {
	v.check(i)
	return v.data.At(i)
}

// Release frees the backing allocation and empties the vector. The vector is
// reusable afterwards.
func (v *Vector[T]) Release() {
	if !v.data.IsNull() {
		v.data.Free(v.alloc)
	}
	v.data = ptr.Null[T]()
	v.len = 0
	v.cap = 0
}

// check panics unless i indexes an initialized slot.
func (v *Vector[T]) check(i int) {
	if i < 0 || i >= v.len {
		panic(fmt.Sprintf("vec: index %d out of range [0:%d]", i, v.len))
	}
}
