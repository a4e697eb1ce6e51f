//go:build !linux && !darwin && !freebsd

package arena

// reserveArena falls back to a heap-backed buffer on platforms without the
// unix mmap path.
func reserveArena(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// releaseArena has nothing to do for a heap-backed arena; the garbage
// collector reclaims it once the pool drops its reference.
func releaseArena(data []byte) error {
	return nil
}
