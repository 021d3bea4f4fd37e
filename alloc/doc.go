// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package alloc provides memkit's allocation providers: the aligned
// raw-memory capability consumed by ptr.Ptr and the containers above it.
//
// # Providers
//
//   - Heap: default provider on the Go runtime heap, pinning live slabs
//   - Pool: size-classed sync.Pool recycling for short-lived allocations
//   - Page: off-heap anonymous page mappings with stable addresses
//   - Arena (package arena): bump allocation with wholesale reclamation
//
// # Middleware
//
//   - Traced: zap-structured logging plus outstanding-byte accounting and
//     leak checks
//   - Checked: panics on double free, foreign free, and malformed requests
//
// Middleware composes like any other provider:
//
//	log, _ := zap.NewDevelopment()
//	a := alloc.NewTraced(alloc.NewChecked(alloc.NewHeap()), log, alloc.DefaultTracedConfig())
//
//	p := ptr.Alloc[float64](a, 1024)
//	defer p.Free(a)
//
// # Failure
//
// Allocation failure is not a reported error: providers panic when the
// runtime or OS refuses memory. There is no recovery path by design; callers
// that can tolerate failure should not sit at this level.
package alloc
