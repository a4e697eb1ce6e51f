package arena

import (
	"fmt"

	"github.com/joshuapare/arenakit/internal/format"
)

// Pool is a fixed-capacity allocator over one pre-reserved byte arena.
// It is the explicit handle for all operations; independent pools do not
// share any state. A Pool is not safe for concurrent use.
type Pool struct {
	data     []byte // the arena; nil once closed
	head     int32  // header offset of the first block, always 0
	strategy Strategy

	// Cumulative call counters. These only ever grow.
	numAllocs uint64
	numFrees  uint64

	// Running byte and block accounting, kept consistent with the block
	// list by every mutating operation. CheckInvariants re-derives and
	// cross-checks them.
	used          int64
	free          int64
	numBlocks     int
	numFreeBlocks int
}

// New reserves an arena of poolSize bytes and installs a single free block
// spanning it. The strategy is fixed for the pool's lifetime.
func New(poolSize int32, strategy Strategy) (*Pool, error) {
	if strategy > WorstFit {
		return nil, fmt.Errorf("%w: %d", ErrBadStrategy, strategy)
	}
	if poolSize < format.HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d",
			ErrPoolTooSmall, poolSize, format.HeaderSize)
	}

	data, err := reserveArena(int(poolSize))
	if err != nil {
		return nil, fmt.Errorf("arena: reserve %d bytes: %w", poolSize, err)
	}

	p := &Pool{
		data:     data,
		head:     0,
		strategy: strategy,
	}
	format.WriteBlock(data, format.Block{
		Offset: p.head,
		Size:   poolSize - format.HeaderSize,
		Next:   format.InvalidOffset,
		Free:   true,
	})
	p.free = int64(poolSize - format.HeaderSize)
	p.numBlocks = 1
	p.numFreeBlocks = 1

	return p, nil
}

// Close releases the arena and invalidates all outstanding refs.
// It is idempotent; operations on a closed pool fail with ErrClosed.
func (p *Pool) Close() {
	if p == nil || p.data == nil {
		return
	}
	_ = releaseArena(p.data)
	p.data = nil
	p.head = format.InvalidOffset
	p.numAllocs = 0
	p.numFrees = 0
	p.used = 0
	p.free = 0
	p.numBlocks = 0
	p.numFreeBlocks = 0
}

// Size returns the total arena capacity in bytes, including block headers.
func (p *Pool) Size() int {
	if p == nil {
		return 0
	}
	return len(p.data)
}

// Strategy returns the fit strategy the pool was created with.
func (p *Pool) Strategy() Strategy {
	return p.strategy
}

// ensureOpen guards every operation against use before New or after Close.
func (p *Pool) ensureOpen() error {
	if p == nil || p.data == nil {
		return ErrClosed
	}
	return nil
}
