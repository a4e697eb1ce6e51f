package arena

import "github.com/joshuapare/arenakit/internal/format"

// Stats is a point-in-time snapshot of pool accounting. Everything except
// the cumulative call counters is re-derivable from the block list.
type Stats struct {
	TotalMemory    int64   // arena capacity, including block headers
	UsedMemory     int64   // payload bytes of allocated blocks
	FreeMemory     int64   // payload bytes of free blocks
	NumAllocations uint64  // successful Alloc calls over the pool's lifetime
	NumFrees       uint64  // successful Free calls over the pool's lifetime
	NumBlocks      int     // total blocks in the list
	NumFreeBlocks  int     // blocks currently free
	Fragmentation  float64 // external fragmentation percentage of free memory
}

// Stats returns a snapshot of the pool's accounting. Fragmentation is
// recomputed from the live block list on every call, never cached.
// A closed pool reports the zero snapshot.
func (p *Pool) Stats() Stats {
	if p.ensureOpen() != nil {
		return Stats{}
	}
	return Stats{
		TotalMemory:    int64(len(p.data)),
		UsedMemory:     p.used,
		FreeMemory:     p.free,
		NumAllocations: p.numAllocs,
		NumFrees:       p.numFrees,
		NumBlocks:      p.numBlocks,
		NumFreeBlocks:  p.numFreeBlocks,
		Fragmentation:  p.fragmentation(),
	}
}

// fragmentation measures the fraction of free capacity that is not usable
// as a single contiguous allocation:
//
//	(free - largestFree) / free * 100
//
// It is zero when there is no free memory at all.
func (p *Pool) fragmentation() float64 {
	if p.free == 0 {
		return 0
	}
	largest := p.largestFree()
	if largest == 0 {
		return 0
	}
	return float64(p.free-int64(largest)) / float64(p.free) * 100
}

// largestFree returns the payload size of the largest free block.
func (p *Pool) largestFree() int32 {
	var largest int32
	for off := p.head; off != format.InvalidOffset; {
		blk := p.blockAt(off)
		if blk.Free && blk.Size > largest {
			largest = blk.Size
		}
		off = blk.Next
	}
	return largest
}
