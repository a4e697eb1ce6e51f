package arena

import (
	"fmt"
	"math"
	"os"

	"github.com/joshuapare/arenakit/internal/format"
)

// Runtime debug flag for allocation tracing - controlled by ARENA_LOG_ALLOC env var.
var logAlloc = os.Getenv("ARENA_LOG_ALLOC") != ""

// Alloc reserves size bytes from the pool and returns the ref of the new
// block's payload together with a slice over it. The slice covers the
// block's full capacity, which may exceed size due to 8-byte rounding or
// an unsplit match. A request of zero bytes fails with ErrSizeZero; a
// request no free block can satisfy fails with ErrNoSpace and leaves the
// pool unchanged.
func (p *Pool) Alloc(size int32) (Ref, []byte, error) {
	if err := p.ensureOpen(); err != nil {
		return NilRef, nil, err
	}
	if size <= 0 {
		return NilRef, nil, ErrSizeZero
	}
	if size > math.MaxInt32-format.BlockAlignmentMask {
		return NilRef, nil, fmt.Errorf("%w: %d bytes requested", ErrNoSpace, size)
	}
	need := format.Align8I32(size)

	off := p.findFit(need)
	if off == format.InvalidOffset {
		if logAlloc {
			fmt.Fprintf(os.Stderr, "[arena] no %s match for %d bytes (aligned %d): free=%d largest=%d\n",
				p.strategy, size, need, p.free, p.largestFree())
		}
		return NilRef, nil, fmt.Errorf("%w: %d bytes requested", ErrNoSpace, need)
	}

	p.split(off, need)

	blk := p.blockAt(off)
	format.SetBlockFree(p.data, off, false)
	p.numAllocs++
	p.used += int64(blk.Size)
	p.free -= int64(blk.Size)
	p.numFreeBlocks--

	ref := off + format.HeaderSize
	return ref, p.data[ref : ref+blk.Size], nil
}

// split divides the free block at off when its payload exceeds need by more
// than one header plus at least one byte; smaller remainders are handed
// over with the block rather than left as unusable fragments. The tail
// becomes a new free block spliced in immediately after the match. This is
// the only place a block is ever divided.
func (p *Pool) split(off, need int32) {
	blk := p.blockAt(off)
	if int(blk.Size) < int(need)+format.HeaderSize+1 {
		return
	}

	tail := off + format.HeaderSize + need
	format.WriteBlock(p.data, format.Block{
		Offset: tail,
		Size:   blk.Size - need - format.HeaderSize,
		Next:   blk.Next,
		Free:   true,
	})
	format.SetBlockSize(p.data, off, need)
	format.SetBlockNext(p.data, off, tail)

	p.numBlocks++
	p.numFreeBlocks++
	// The tail's header is carved out of what was free payload.
	p.free -= format.HeaderSize
}
