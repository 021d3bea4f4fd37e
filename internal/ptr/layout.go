package ptr

import "unsafe"

// SizeOf returns the slot stride of T in bytes.
func SizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// AlignOf returns the required slot alignment of T in bytes.
func AlignOf[T any]() uintptr {
	var zero T
	return unsafe.Alignof(zero)
}
