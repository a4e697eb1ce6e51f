package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReallocGrowPreservesPayload(t *testing.T) {
	p := newTestPool(t, 4096, FirstFit)

	ref, buf := mustAlloc(t, p, 24)
	for i := range buf {
		buf[i] = byte(i + 1)
	}

	newRef, newBuf, err := p.Realloc(ref, 64)
	require.NoError(t, err)
	require.NotEqual(t, NilRef, newRef)
	assert.NotEqual(t, ref, newRef, "growth cannot happen in place here")
	require.GreaterOrEqual(t, len(newBuf), 64)

	for i := 0; i < 24; i++ {
		assert.Equal(t, byte(i+1), newBuf[i], "byte %d must survive the move", i)
	}
	assertInvariants(t, p)
}

func TestReallocFitsInPlace(t *testing.T) {
	p := newTestPool(t, 4096, FirstFit)

	// 30 rounds up to 32, so growing within the rounded capacity is free.
	ref, _ := mustAlloc(t, p, 30)
	statsBefore := p.Stats()

	newRef, _, err := p.Realloc(ref, 32)
	require.NoError(t, err)
	assert.Equal(t, ref, newRef, "no data movement when the block already fits")
	assert.Equal(t, statsBefore, p.Stats())
	assertInvariants(t, p)
}

func TestReallocNilRefAllocates(t *testing.T) {
	p := newTestPool(t, 4096, FirstFit)

	ref, buf, err := p.Realloc(NilRef, 128)
	require.NoError(t, err)
	assert.NotEqual(t, NilRef, ref)
	assert.GreaterOrEqual(t, len(buf), 128)
	assert.Equal(t, uint64(1), p.Stats().NumAllocations)
}

func TestReallocToZeroFrees(t *testing.T) {
	p := newTestPool(t, 4096, FirstFit)

	ref, _ := mustAlloc(t, p, 100)
	newRef, buf, err := p.Realloc(ref, 0)
	require.NoError(t, err)
	assert.Equal(t, NilRef, newRef)
	assert.Nil(t, buf)

	s := p.Stats()
	assert.Equal(t, int64(0), s.UsedMemory)
	assert.Equal(t, uint64(1), s.NumFrees)
	assertInvariants(t, p)
}

func TestReallocFailureLeavesOriginalIntact(t *testing.T) {
	// A pool too small to hold both the old and the new block at once.
	p := newTestPool(t, 128, FirstFit)

	ref, buf := mustAlloc(t, p, 40)
	for i := range buf {
		buf[i] = 0xEE
	}
	mustAlloc(t, p, 56) // fill the remainder
	statsBefore := p.Stats()

	newRef, newBuf, err := p.Realloc(ref, 80)
	require.ErrorIs(t, err, ErrNoSpace)
	assert.Equal(t, NilRef, newRef)
	assert.Nil(t, newBuf)

	// Original block and its contents are untouched.
	assert.Equal(t, statsBefore, p.Stats())
	for i, v := range buf {
		require.Equal(t, byte(0xEE), v, "byte %d of original payload", i)
	}
	assertInvariants(t, p)
}

func TestReallocRejectsBadRefs(t *testing.T) {
	p := newTestPool(t, 4096, FirstFit)
	ref, _ := mustAlloc(t, p, 64)

	_, _, err := p.Realloc(100000, 32)
	assert.ErrorIs(t, err, ErrBadRef)

	// Realloc of a freed block is a bad ref, not a resize. The second
	// allocation keeps the freed block from coalescing into the tail.
	mustAlloc(t, p, 8)
	require.NoError(t, p.Free(ref))

	_, _, err = p.Realloc(ref, 32)
	assert.ErrorIs(t, err, ErrBadRef)
	assertInvariants(t, p)
}
