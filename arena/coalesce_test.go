package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// freeOrders covers every release order of three adjacent blocks.
var freeOrders = [][]int{
	{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
}

func TestAdjacentFreesCollapseToOneBlock(t *testing.T) {
	for _, order := range freeOrders {
		p := newTestPool(t, 4096, FirstFit)

		refs := make([]Ref, 3)
		for i := range refs {
			refs[i], _ = mustAlloc(t, p, 64)
		}
		blocksBefore := p.Stats().NumBlocks

		for _, i := range order {
			require.NoError(t, p.Free(refs[i]))
		}
		p.Coalesce()

		s := p.Stats()
		assert.Equal(t, 1, s.NumFreeBlocks, "order %v: all free space should be one block", order)
		assert.Equal(t, 1, s.NumBlocks, "order %v", order)
		assert.Less(t, s.NumBlocks, blocksBefore, "order %v: coalescing must shrink the block count", order)
		assertInvariants(t, p)

		p.Close()
	}
}

// TestCoalesceMergesWholeRunInOnePass frees the middle block of a
// free-allocated-free sandwich last. The single coalescing pass after that
// free must merge the whole run, not just one pair: the scan re-examines a
// merged block against its new neighbor before advancing.
func TestCoalesceMergesWholeRunInOnePass(t *testing.T) {
	p := newTestPool(t, 4096, FirstFit)

	a, _ := mustAlloc(t, p, 64)
	b, _ := mustAlloc(t, p, 64)
	c, _ := mustAlloc(t, p, 64)

	require.NoError(t, p.Free(a))
	require.NoError(t, p.Free(c)) // c merges with the trailing free space

	// Free space is now split across two separated regions.
	require.Equal(t, 2, p.Stats().NumFreeBlocks)

	require.NoError(t, p.Free(b))

	s := p.Stats()
	assert.Equal(t, 1, s.NumFreeBlocks, "a, b, c and the tail must all merge")
	assert.Equal(t, 1, s.NumBlocks)
	assertInvariants(t, p)
}

func TestCoalesceRestoresFullCapacity(t *testing.T) {
	p := newTestPool(t, 4096, BestFit)
	initialFree := p.Stats().FreeMemory

	refs := make([]Ref, 0, 8)
	for i := 0; i < 8; i++ {
		ref, _ := mustAlloc(t, p, 48)
		refs = append(refs, ref)
	}
	for _, ref := range refs {
		require.NoError(t, p.Free(ref))
	}

	s := p.Stats()
	assert.Equal(t, initialFree, s.FreeMemory,
		"freeing everything must reclaim split-off headers too")
	assert.Equal(t, 1, s.NumBlocks)
	assertInvariants(t, p)
}

func TestCoalesceLeavesAllocatedNeighborsAlone(t *testing.T) {
	p := newTestPool(t, 4096, FirstFit)

	a, _ := mustAlloc(t, p, 64)
	b, bBuf := mustAlloc(t, p, 64)
	for i := range bBuf {
		bBuf[i] = 0x5C
	}

	require.NoError(t, p.Free(a))
	p.Coalesce()

	// b's payload is untouched by merges around it.
	for i, v := range bBuf {
		require.Equal(t, byte(0x5C), v, "byte %d of live payload", i)
	}
	require.NoError(t, p.Free(b))
	assertInvariants(t, p)
}
