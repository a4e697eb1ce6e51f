// Package arena implements a fixed-capacity memory allocator over a single
// pre-reserved byte arena.
//
// # Overview
//
// A Pool owns one contiguous byte buffer for its whole lifetime. The buffer
// is covered by an intrusive singly-linked list of block headers, each
// followed by that block's payload. Allocation searches the list for a free
// block using a fit strategy chosen at construction, splits oversized
// matches, and hands out an offset-based reference to the payload. Freeing
// marks the block free and merges runs of adjacent free blocks.
//
// # Usage Example
//
//	p, err := arena.New(64*1024, arena.FirstFit)
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	ref, buf, err := p.Alloc(256)
//	if err != nil {
//	    return err
//	}
//	copy(buf, payload)
//
//	// Later, release the block back to the pool.
//	err = p.Free(ref)
//
// # Block References
//
// Refs are int32 offsets of a block's payload within the arena, never raw
// pointers. NilRef (zero) is the null reference: the first payload in the
// arena sits after the first header, so offset zero can never be a payload.
// Refs from one pool are meaningless in another, and all refs are
// invalidated by Close.
//
// # Fit Strategies
//
// Three strategies are available, fixed for the pool's lifetime:
//
//   - FirstFit: first free block large enough, in address order
//   - BestFit: smallest free block large enough
//   - WorstFit: largest free block large enough
//
// All three are O(n) in the number of blocks. Ties go to the block
// encountered first in address order.
//
// # Alignment Requirements
//
// All allocation sizes are rounded up to 8 bytes. Returned refs are always
// 8-byte aligned.
//
// # Statistics
//
// Stats reports total/used/free byte counts, block counts, cumulative
// alloc/free call counts, and an external fragmentation percentage: the
// fraction of free capacity not usable as one contiguous allocation.
// Fragmentation is recomputed from the live block list on every call.
//
// # Thread Safety
//
// Pool instances are not thread-safe. Callers must synchronize access
// externally; every operation runs to completion before returning.
package arena
