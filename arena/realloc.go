package arena

import (
	"fmt"
)

// Realloc resizes the block behind ref to hold at least newSize bytes.
//
//   - Realloc(NilRef, n) behaves as Alloc(n).
//   - Realloc(ref, 0) behaves as Free(ref) and returns NilRef.
//   - When the block's current capacity already covers newSize the same
//     ref is returned with no data movement.
//   - Otherwise a new block is allocated, the old block's full current
//     payload is copied across, and the old block is freed. On allocation
//     failure the old block is untouched and its ref stays valid.
//
// The copy always covers the old block's whole capacity, not just the
// bytes the caller originally requested; trailing bytes introduced by
// rounding or an unsplit match travel with the data.
func (p *Pool) Realloc(ref Ref, newSize int32) (Ref, []byte, error) {
	if err := p.ensureOpen(); err != nil {
		return NilRef, nil, err
	}
	if ref == NilRef {
		return p.Alloc(newSize)
	}
	if newSize == 0 {
		if err := p.Free(ref); err != nil {
			return NilRef, nil, err
		}
		return NilRef, nil, nil
	}
	if newSize < 0 {
		return NilRef, nil, ErrSizeZero
	}

	off, err := p.lookupRef(ref)
	if err != nil {
		return NilRef, nil, err
	}
	blk := p.blockAt(off)
	if blk.Free {
		return NilRef, nil, fmt.Errorf("%w: ref %#x is not allocated", ErrBadRef, ref)
	}

	if blk.Size >= newSize {
		return ref, p.data[ref : ref+blk.Size], nil
	}

	newRef, newBuf, err := p.Alloc(newSize)
	if err != nil {
		return NilRef, nil, err
	}
	copy(newBuf, p.data[ref:ref+blk.Size])
	// Cannot fail: ref was just validated as an allocated block.
	_ = p.Free(ref)

	return newRef, newBuf, nil
}
