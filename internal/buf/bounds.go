// Package buf contains overflow-safe bounds arithmetic for code that walks
// raw byte buffers.
package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// CheckBlockBounds validates that a block of headerSize header bytes plus
// size payload bytes fits in a buffer of bufLen bytes starting at offset.
// Returns the end offset (the offset of the following block) if valid, or
// an error describing the specific failure.
func CheckBlockBounds(bufLen, offset, headerSize, size int) (int, error) {
	if offset < 0 {
		return 0, fmt.Errorf("negative offset: %d", offset)
	}
	if size < 0 {
		return 0, fmt.Errorf("negative size: %d", size)
	}

	total, ok := AddOverflowSafe(headerSize, size)
	if !ok {
		return 0, fmt.Errorf("overflow: header=%d + size=%d", headerSize, size)
	}
	end, ok := AddOverflowSafe(offset, total)
	if !ok {
		return 0, fmt.Errorf("overflow: offset=%d + size=%d", offset, total)
	}
	if end > bufLen {
		return 0, fmt.Errorf("bounds: end=%d > len=%d", end, bufLen)
	}
	return end, nil
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	if off < 0 || n < 0 || off > len(b) {
		return false
	}
	end, ok := AddOverflowSafe(off, n)
	return ok && end <= len(b)
}
