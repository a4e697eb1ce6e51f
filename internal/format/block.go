package format

// Block represents one allocation unit (free or in-use) within the arena.
//
// Block header layout (little-endian):
//
//	Offset  Size  Description
//	0x00    4     Payload size in bytes, excluding the 16-byte header.
//	0x04    4     Header offset of the next block, InvalidOffset at the tail.
//	0x08    4     Flags. Bit 0 set => free.
//	0x0C    4     Reserved, zero.
type Block struct {
	Offset int32 // Header offset within the arena
	Size   int32 // Payload size, excluding the header
	Next   int32 // Header offset of the next block, InvalidOffset at tail
	Free   bool  // True when the block is available for allocation
}

// ReadBlock decodes the block header at the given offset.
// The caller is responsible for off pointing at a valid header.
func ReadBlock(b []byte, off int32) Block {
	return Block{
		Offset: off,
		Size:   ReadI32(b, int(off)+blockSizeOff),
		Next:   ReadI32(b, int(off)+blockNextOff),
		Free:   ReadU32(b, int(off)+blockFlagsOff)&FlagFree != 0,
	}
}

// WriteBlock encodes blk's header at blk.Offset, clearing the reserved field.
func WriteBlock(b []byte, blk Block) {
	PutI32(b, int(blk.Offset)+blockSizeOff, blk.Size)
	PutI32(b, int(blk.Offset)+blockNextOff, blk.Next)
	var flags uint32
	if blk.Free {
		flags |= FlagFree
	}
	PutU32(b, int(blk.Offset)+blockFlagsOff, flags)
	PutU32(b, int(blk.Offset)+blockFlagsOff+4, 0)
}

// SetBlockSize updates only the payload size field of the header at off.
func SetBlockSize(b []byte, off, size int32) {
	PutI32(b, int(off)+blockSizeOff, size)
}

// SetBlockNext updates only the next-link field of the header at off.
func SetBlockNext(b []byte, off, next int32) {
	PutI32(b, int(off)+blockNextOff, next)
}

// SetBlockFree updates only the free flag of the header at off.
func SetBlockFree(b []byte, off int32, free bool) {
	flags := ReadU32(b, int(off)+blockFlagsOff)
	if free {
		flags |= FlagFree
	} else {
		flags &^= FlagFree
	}
	PutU32(b, int(off)+blockFlagsOff, flags)
}
