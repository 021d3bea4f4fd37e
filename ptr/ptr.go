// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ptr

import (
	"github.com/born-ml/memkit/internal/alloc"
	"github.com/born-ml/memkit/internal/ptr"
)

// Ptr is an owning pointer to provider-allocated slots of T.
//
// The handle is one machine word, freely copyable, with no destructor of its
// own: ownership of the pointee is separate from ownership of the handle.
// See the package documentation for the full contract.
type Ptr[T any] = ptr.Ptr[T]

// Null returns the null pointer, identical to the zero value.
func Null[T any]() Ptr[T] {
	return ptr.Null[T]()
}

// Alloc requests n uninitialized slots of T from provider a.
func Alloc[T any](a alloc.Allocator, n int) Ptr[T] {
	return ptr.Alloc[T](a, n)
}

// FromAddr reconstructs a pointer from an integral address previously
// obtained via Addr. The round trip is exact.
func FromAddr[T any](addr uintptr) Ptr[T] {
	return ptr.FromAddr[T](addr)
}

// SizeOf returns the slot stride of T in bytes.
func SizeOf[T any]() uintptr {
	return ptr.SizeOf[T]()
}

// AlignOf returns the required slot alignment of T in bytes.
func AlignOf[T any]() uintptr {
	return ptr.AlignOf[T]()
}
