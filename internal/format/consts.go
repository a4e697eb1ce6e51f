package format

// Layout constants for the arena block format.
//
// Every block in the arena starts with a fixed-size header immediately
// followed by that block's payload. The whole arena is covered by one
// contiguous chain of blocks with no gaps between them.

const (
	// HeaderSize is the number of bytes used by the block header preceding
	// each payload. It is a multiple of BlockAlignment so that payloads of
	// aligned sizes keep every subsequent header aligned as well.
	HeaderSize = 16

	// BlockAlignment is the required alignment of allocation sizes.
	// Requested sizes are rounded up to the next multiple of this value.
	BlockAlignment = 8

	// BlockAlignmentMask is the bitmask used for aligning to 8-byte
	// boundaries (BlockAlignment - 1).
	BlockAlignmentMask = BlockAlignment - 1
)

// InvalidOffset marks the absence of a next block (the list tail).
const InvalidOffset int32 = -1

// Block header field offsets, relative to the header start.
const (
	blockSizeOff  = 0x00 // i32: payload size in bytes, excluding the header
	blockNextOff  = 0x04 // i32: header offset of the next block, InvalidOffset at tail
	blockFlagsOff = 0x08 // u32: block flags
	// 0x0C..0x10 reserved, always zero
)

// Block flag bits.
const (
	// FlagFree marks a block as free (available for allocation).
	FlagFree uint32 = 1 << 0
)
