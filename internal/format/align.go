package format

// Alignment utilities for the arena block format.
// All allocation sizes are rounded up to 8-byte boundaries.

// Align8 returns n aligned up to the next 8-byte boundary.
//
// Example:
//
//	Align8(1)  = 8
//	Align8(8)  = 8
//	Align8(9)  = 16
func Align8(n int) int {
	return (n + BlockAlignmentMask) & ^BlockAlignmentMask
}

// Align8I32 returns n aligned up to the next 8-byte boundary.
// int32 version for use in allocator code.
func Align8I32(n int32) int32 {
	return (n + BlockAlignmentMask) & ^int32(BlockAlignmentMask)
}
