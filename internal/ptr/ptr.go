// Package ptr provides the core generic owning pointer for memkit.
//
// Ptr[T] is an unchecked, trivially copyable handle to provider-allocated
// slots of T. Every precondition below is the caller's responsibility; no
// operation checks, reports, or recovers. The misuse classes are:
//
//   - null dereference: Deref/At/Take/Emplace/MoveInto through a null pointer
//   - use after free: any operation on a pointer whose allocation was freed
//   - double free: Free twice on pointers sharing an allocation
//   - double move / stale read: Take (or MoveInto source) twice without an
//     intervening Emplace
//   - uninitialized read: Take or Deref on a slot never emplaced
//   - overwrite without release: Emplace (or MoveInto destination) on a slot
//     that is still occupied, leaking the prior occupant
//   - out-of-range offset: Offset past the governing allocation, then
//     dereferenced
//
// Safe containers built on Ptr uphold these by construction; see vec and
// arena. Misuse detectable at the allocation boundary can be asserted with
// alloc.Checked.
package ptr

import (
	"fmt"
	"unsafe"

	"github.com/born-ml/memkit/internal/alloc"
)

// Ptr is an owning pointer to zero or more T-sized slots obtained from an
// allocation provider. The handle itself is one machine word: copying it
// copies the address only, never the pointee, and no finalizer or destructor
// is attached. Backing memory lives until an explicit Free.
//
// Each slot has a logical occupancy state, uninitialized or initialized, that
// exists only in the caller's bookkeeping: Emplace transitions a slot to
// initialized, Take (and MoveInto on the source) back to uninitialized.
type Ptr[T any] struct {
	addr unsafe.Pointer
}

// Null returns the null pointer, identical to the zero value.
func Null[T any]() Ptr[T] {
	return Ptr[T]{}
}

// Alloc requests n uninitialized slots from provider a, sized n*SizeOf[T]()
// and aligned to AlignOf[T](). The result is non-null; provider failure
// panics inside the provider rather than returning an error.
func Alloc[T any](a alloc.Allocator, n int) Ptr[T] {
	return Ptr[T]{addr: a.Alloc(uintptr(n)*SizeOf[T](), AlignOf[T]())}
}

// FromAddr reconstructs a pointer from an integral address previously
// obtained via Addr. The round trip is exact. The address must refer to a
// live allocation kept reachable by its provider; the collector does not see
// integral addresses.
func FromAddr[T any](addr uintptr) Ptr[T] {
	//nolint:govet // integral address round-trip is the documented contract;
	// providers pin live allocations.
	return Ptr[T]{addr: unsafe.Pointer(addr)}
}

// Free releases the whole backing allocation through provider a. The pointer
// (and every offset of it) dangles afterwards.
func (p Ptr[T]) Free(a alloc.Allocator) {
	a.Free(p.addr)
}

// IsNull reports whether p is the null pointer.
func (p Ptr[T]) IsNull() bool {
	return p.addr == nil
}

// Addr returns the integral address of p. Addr and FromAddr round-trip
// exactly for any pointer produced by this package.
func (p Ptr[T]) Addr() uintptr {
	return uintptr(p.addr)
}

// Offset returns the pointer k slots away: address + k*SizeOf[T](). No
// bounds check; the result must stay inside a live allocation before it is
// dereferenced.
func (p Ptr[T]) Offset(k int) Ptr[T] {
	return Ptr[T]{addr: unsafe.Add(p.addr, k*int(SizeOf[T]()))}
}

// Deref returns a borrowed alias of the slot for in-place read or mutation.
// The alias carries no ownership: it is valid only until the slot is freed,
// moved out, or reused.
func (p Ptr[T]) Deref() *T {
	return (*T)(p.addr)
}

// At returns a borrowed alias of the slot k offsets away, Offset(k).Deref()
// in one step.
func (p Ptr[T]) At(k int) *T {
	return (*T)(unsafe.Add(p.addr, k*int(SizeOf[T]())))
}

// Emplace moves v into the slot, transitioning it uninitialized →
// initialized. Nothing runs on the slot's prior bytes; an occupied slot is
// silently leaked.
func (p Ptr[T]) Emplace(v T) {
	*(*T)(p.addr) = v
}

// Take moves the value out of the slot, transitioning it initialized →
// uninitialized. Exactly one value copy. The slot must be re-emplaced before
// it is read again.
func (p Ptr[T]) Take() T {
	return *(*T)(p.addr)
}

// MoveInto relocates the value from p's slot directly into dest's slot with
// exactly one value copy, leaving p's slot uninitialized and dest's slot
// initialized. Prior bytes at dest are overwritten without release. The fused
// form exists so containers compacting in place pay one move per element even
// when T's move is not O(1).
func (p Ptr[T]) MoveInto(dest Ptr[T]) {
	*(*T)(dest.addr) = *(*T)(p.addr)
}

// String formats the address for diagnostics.
func (p Ptr[T]) String() string {
	return fmt.Sprintf("Ptr(%#x)", uintptr(p.addr))
}
