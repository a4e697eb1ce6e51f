package arena

import (
	"fmt"

	"github.com/joshuapare/arenakit/internal/format"
)

// Free returns the block behind ref to the pool and merges any adjacent
// free blocks. Freeing NilRef is a no-op. A ref outside the arena or not
// at a block start fails with ErrBadRef; freeing an already-free block
// fails with ErrDoubleFree. Both leave the pool unchanged.
func (p *Pool) Free(ref Ref) error {
	if ref == NilRef {
		return nil
	}
	if err := p.ensureOpen(); err != nil {
		return err
	}

	off, err := p.lookupRef(ref)
	if err != nil {
		return err
	}
	blk := p.blockAt(off)
	if blk.Free {
		return fmt.Errorf("%w: ref %#x", ErrDoubleFree, ref)
	}

	format.SetBlockFree(p.data, off, true)
	p.numFrees++
	p.used -= int64(blk.Size)
	p.free += int64(blk.Size)
	p.numFreeBlocks++

	p.coalesce()
	return nil
}

// Coalesce merges runs of adjacent free blocks into single blocks. It runs
// automatically after every successful Free; calling it explicitly is only
// useful for inspection tooling. A closed pool is left alone.
func (p *Pool) Coalesce() {
	if p.ensureOpen() != nil {
		return
	}
	p.coalesce()
}

// coalesce makes one forward pass over the list in address order. When a
// block and its successor are both free they merge, reclaiming the
// absorbed header as payload, and the scan stays on the merged block so a
// whole run of free blocks collapses in a single pass. This is the only
// place blocks are ever merged.
func (p *Pool) coalesce() {
	for off := p.head; off != format.InvalidOffset; {
		blk := p.blockAt(off)
		if blk.Next == format.InvalidOffset {
			break
		}
		next := p.blockAt(blk.Next)
		if blk.Free && next.Free {
			format.SetBlockSize(p.data, off, blk.Size+format.HeaderSize+next.Size)
			format.SetBlockNext(p.data, off, next.Next)
			p.numBlocks--
			p.numFreeBlocks--
			// The absorbed header becomes free payload again.
			p.free += format.HeaderSize
			continue
		}
		off = blk.Next
	}
}
