package arena

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/arenakit/internal/format"
)

func TestBlocksReportsAddressOrderedList(t *testing.T) {
	p := newTestPool(t, 4096, FirstFit)

	mustAlloc(t, p, 100)
	mid, _ := mustAlloc(t, p, 200)
	mustAlloc(t, p, 50)
	require.NoError(t, p.Free(mid))

	blocks := p.Blocks()
	require.Equal(t, p.Stats().NumBlocks, len(blocks))

	end := int32(0)
	for i, blk := range blocks {
		assert.Equal(t, end, blk.Offset, "block %d must start where block %d ended", i, i-1)
		assert.Equal(t, blk.Offset+format.HeaderSize, blk.Ref)
		end = blk.Offset + format.HeaderSize + blk.Size
		if i < len(blocks)-1 {
			assert.Equal(t, blk.Next, blocks[i+1].Offset)
		} else {
			assert.Equal(t, format.InvalidOffset, blk.Next, "tail block links nowhere")
		}
	}
	assert.Equal(t, int32(p.Size()), end, "blocks must span the whole arena")

	// The released middle block shows up free at its old ref.
	assert.True(t, blocks[1].Free)
	assert.Equal(t, mid, blocks[1].Ref)
}

func TestWriteMemoryMapListsEveryBlock(t *testing.T) {
	p := newTestPool(t, 4096, BestFit)
	mustAlloc(t, p, 64)
	freed, _ := mustAlloc(t, p, 64)
	mustAlloc(t, p, 64)
	require.NoError(t, p.Free(freed))

	var sb strings.Builder
	require.NoError(t, p.WriteMemoryMap(&sb))
	out := sb.String()

	assert.Contains(t, out, "best-fit")
	assert.Equal(t, p.Stats().NumBlocks, strings.Count(out, "Block "))
	assert.Contains(t, out, "Status: FREE")
	assert.Contains(t, out, "Status: ALLOCATED")
	assert.Contains(t, out, "Next: <none>", "tail block prints no link")
}

func TestWriteStatsReport(t *testing.T) {
	p := newTestPool(t, 4096, WorstFit)
	ref, _ := mustAlloc(t, p, 100)
	require.NoError(t, p.Free(ref))

	var sb strings.Builder
	require.NoError(t, p.WriteStats(&sb))
	out := sb.String()

	assert.Contains(t, out, "Strategy: worst-fit")
	assert.Contains(t, out, "Total Memory: 4096 bytes")
	assert.Contains(t, out, "Allocations: 1")
	assert.Contains(t, out, "Frees: 1")
	assert.Contains(t, out, "Fragmentation: 0.00%")
}

func TestDumpOnClosedPool(t *testing.T) {
	p, err := New(4096, FirstFit)
	require.NoError(t, err)
	p.Close()

	var sb strings.Builder
	assert.ErrorIs(t, p.WriteMemoryMap(&sb), ErrClosed)
	assert.ErrorIs(t, p.WriteStats(&sb), ErrClosed)
}
