//go:build unix

package alloc

import "syscall"

// mapPages maps length bytes of zeroed anonymous memory (Unix implementation).
func mapPages(length int) ([]byte, error) {
	return syscall.Mmap(
		-1,
		0,
		length,
		syscall.PROT_READ|syscall.PROT_WRITE,
		syscall.MAP_ANON|syscall.MAP_PRIVATE,
	)
}

// unmapPages releases a region returned by mapPages (Unix implementation).
func unmapPages(region []byte) error {
	return syscall.Munmap(region)
}
