package arena

import (
	"fmt"

	"github.com/joshuapare/arenakit/internal/buf"
	"github.com/joshuapare/arenakit/internal/format"
)

// blockAt decodes the block header at the given offset.
func (p *Pool) blockAt(off int32) format.Block {
	return format.ReadBlock(p.data, off)
}

// lookupRef translates a payload ref to its block header offset.
// A ref outside the arena span, or one that does not land exactly on a
// block's payload start, fails with ErrBadRef. The walk exploits address
// ordering to stop early.
func (p *Pool) lookupRef(ref Ref) (int32, error) {
	if ref < format.HeaderSize || int(ref) > len(p.data) {
		return 0, fmt.Errorf("%w: ref %#x outside arena of %d bytes", ErrBadRef, ref, len(p.data))
	}
	want := ref - format.HeaderSize
	for off := p.head; off != format.InvalidOffset && off <= want; {
		if off == want {
			return off, nil
		}
		off = p.blockAt(off).Next
	}
	return 0, fmt.Errorf("%w: ref %#x is not the start of a block", ErrBadRef, ref)
}

// CheckInvariants walks the block list and validates the structural
// invariants the allocator relies on: the list covers the arena exactly,
// in ascending address order with no gaps or overlap, and the running
// counters match what the list re-derives. It never mutates state.
func (p *Pool) CheckInvariants() error {
	if err := p.ensureOpen(); err != nil {
		return err
	}

	var (
		blocks     int
		freeBlocks int
		used       int64
		free       int64
	)
	end := 0
	for off := p.head; off != format.InvalidOffset; {
		if int(off) != end {
			return fmt.Errorf("arena: block at %#x does not start at previous block end %#x", off, end)
		}
		blk := p.blockAt(off)
		var err error
		end, err = buf.CheckBlockBounds(len(p.data), int(off), format.HeaderSize, int(blk.Size))
		if err != nil {
			return fmt.Errorf("arena: block at %#x: %w", off, err)
		}
		blocks++
		if blk.Free {
			freeBlocks++
			free += int64(blk.Size)
		} else {
			used += int64(blk.Size)
		}
		off = blk.Next
	}
	if end != len(p.data) {
		return fmt.Errorf("arena: block list covers %d of %d bytes", end, len(p.data))
	}
	if blocks != p.numBlocks || freeBlocks != p.numFreeBlocks {
		return fmt.Errorf("arena: counted %d blocks (%d free), accounting says %d (%d free)",
			blocks, freeBlocks, p.numBlocks, p.numFreeBlocks)
	}
	if used != p.used || free != p.free {
		return fmt.Errorf("arena: counted %d used / %d free bytes, accounting says %d / %d",
			used, free, p.used, p.free)
	}
	return nil
}
