// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vec provides a dynamic array built on memkit's owning pointer.
//
// Vector[T] is the checked layer the unchecked pointer is designed to sit
// beneath: indices are bounds-checked and slot occupancy is tracked by
// length, so every pointer precondition holds by construction. Removal
// compacts the tail with single fused moves per element.
//
// Example:
//
//	heap := alloc.NewHeap()
//	v := vec.New[float64](heap)
//	defer v.Release()
//
//	v.Append(1.5)
//	v.Append(2.5)
//	*v.Ref(0) += 1 // in-place mutation through a borrowed alias
package vec

import (
	"github.com/born-ml/memkit/internal/alloc"
	"github.com/born-ml/memkit/internal/vec"
)

// Vector is a growable array of T backed by provider-allocated slots. Not
// safe for concurrent use; call Release to return the backing memory.
type Vector[T any] = vec.Vector[T]

// New creates an empty vector drawing memory from a.
func New[T any](a alloc.Allocator) *Vector[T] {
	return vec.New[T](a)
}

// WithCapacity creates an empty vector with room for n elements before the
// first relocation.
func WithCapacity[T any](a alloc.Allocator, n int) *Vector[T] {
	return vec.WithCapacity[T](a, n)
}
