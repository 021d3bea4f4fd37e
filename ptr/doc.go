// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ptr provides the generic owning pointer at the bottom of memkit.
//
// # Overview
//
// Ptr[T] is an unchecked, single-word handle to uninitialized or initialized
// slots of T drawn from an allocation provider. It is the substrate that
// memkit's containers (vec, arena, and anything users build) stand on:
//   - Allocation and release through a pluggable alloc.Allocator
//   - Slot-wise move semantics: Emplace, Take, and the fused MoveInto
//   - Unchecked pointer arithmetic via Offset
//   - Borrowed aliases via Deref/At for in-place access
//   - Exact integral address round trips via Addr/FromAddr
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/memkit/alloc"
//	    "github.com/born-ml/memkit/ptr"
//	)
//
//	func main() {
//	    heap := alloc.NewHeap()
//
//	    p := ptr.Alloc[int64](heap, 4) // four uninitialized slots
//	    p.Offset(0).Emplace(10)
//	    p.Offset(1).Emplace(20)
//
//	    _ = p.Offset(1).Take() // 20; slot 1 is uninitialized again
//	    *p.At(0) += 1          // in-place mutation through a borrowed alias
//
//	    _ = p.Offset(0).Take()
//	    p.Free(heap)
//	}
//
// # Contract
//
// Every operation is unchecked. The package documents its misuse classes
// (null dereference, use after free, double free, double move, uninitialized
// read, overwrite without release, out-of-range offset) and prevents none of
// them at runtime; that is the job of the safe containers layered above, and
// of alloc.Checked in development builds for the subset visible at the
// allocation boundary.
//
// # Occupancy
//
// A slot is logically uninitialized until Emplace and after Take (or after
// serving as a MoveInto source). The handle carries no runtime tag for this;
// correct sequencing is part of the caller's contract.
//
// # Memory Model
//
// Ptr treats slots as untyped bytes. Providers pin their live allocations, but
// the garbage collector does not scan slot contents: element types containing
// Go pointers must be kept reachable elsewhere while stored.
//
// Copying a Ptr copies the address only. The handle has no destructor; backing
// memory lives until an explicit Free. Concurrent access to the same slots
// requires external synchronization.
package ptr
