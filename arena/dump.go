package arena

import (
	"fmt"
	"io"

	"github.com/joshuapare/arenakit/internal/format"
)

// BlockInfo describes one block for inspection tooling. The slice returned
// by Blocks is a read-only view; mutating it has no effect on the pool.
type BlockInfo struct {
	Offset int32 // header offset within the arena
	Ref    Ref   // payload ref clients would hold for this block
	Size   int32 // payload size, excluding the header
	Free   bool
	Next   int32 // header offset of the next block, format.InvalidOffset at tail
}

// Blocks returns the block list in address order. A closed pool returns nil.
func (p *Pool) Blocks() []BlockInfo {
	if p.ensureOpen() != nil {
		return nil
	}
	infos := make([]BlockInfo, 0, p.numBlocks)
	for off := p.head; off != format.InvalidOffset; {
		blk := p.blockAt(off)
		infos = append(infos, BlockInfo{
			Offset: blk.Offset,
			Ref:    blk.Offset + format.HeaderSize,
			Size:   blk.Size,
			Free:   blk.Free,
			Next:   blk.Next,
		})
		off = blk.Next
	}
	return infos
}

// WriteMemoryMap writes a human-readable dump of every block to w, in
// address order.
func (p *Pool) WriteMemoryMap(w io.Writer) error {
	if err := p.ensureOpen(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Memory map (%d bytes, %s):\n", len(p.data), p.strategy); err != nil {
		return err
	}
	for i, blk := range p.Blocks() {
		status := "ALLOCATED"
		if blk.Free {
			status = "FREE"
		}
		next := "<none>"
		if blk.Next != format.InvalidOffset {
			next = fmt.Sprintf("%#06x", blk.Next)
		}
		_, err := fmt.Fprintf(w, "Block %d:\n  Offset: %#06x\n  Size: %d bytes\n  Status: %s\n  Next: %s\n",
			i, blk.Offset, blk.Size, status, next)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteStats writes a human-readable statistics report to w.
func (p *Pool) WriteStats(w io.Writer) error {
	if err := p.ensureOpen(); err != nil {
		return err
	}

	s := p.Stats()
	_, err := fmt.Fprintf(w,
		"Strategy: %s\n"+
			"Total Memory: %d bytes\n"+
			"Used Memory: %d bytes (%.1f%%)\n"+
			"Free Memory: %d bytes (%.1f%%)\n"+
			"Total Blocks: %d\n"+
			"Free Blocks: %d\n"+
			"Allocated Blocks: %d\n"+
			"Allocations: %d\n"+
			"Frees: %d\n"+
			"Fragmentation: %.2f%%\n",
		p.strategy,
		s.TotalMemory,
		s.UsedMemory, float64(s.UsedMemory)/float64(s.TotalMemory)*100,
		s.FreeMemory, float64(s.FreeMemory)/float64(s.TotalMemory)*100,
		s.NumBlocks,
		s.NumFreeBlocks,
		s.NumBlocks-s.NumFreeBlocks,
		s.NumAllocations,
		s.NumFrees,
		s.Fragmentation,
	)
	return err
}
