//go:build linux || darwin || freebsd

package arena

import "golang.org/x/sys/unix"

// reserveArena maps an anonymous private region for the arena so its pages
// live outside the Go heap and can be returned to the OS on Close.
func reserveArena(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
}

// releaseArena unmaps a region obtained from reserveArena.
func releaseArena(data []byte) error {
	return unix.Munmap(data)
}
