package arena

import (
	"fmt"

	"github.com/joshuapare/arenakit/internal/format"
)

// Strategy selects which free block satisfies an allocation when several
// qualify. It is fixed at pool construction.
type Strategy uint8

const (
	// FirstFit returns the first free block large enough, in address order.
	FirstFit Strategy = iota

	// BestFit returns the smallest free block large enough.
	BestFit

	// WorstFit returns the largest free block large enough.
	WorstFit
)

// String returns the canonical name of the strategy.
func (s Strategy) String() string {
	switch s {
	case FirstFit:
		return "first-fit"
	case BestFit:
		return "best-fit"
	case WorstFit:
		return "worst-fit"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// ParseStrategy maps a strategy name to its Strategy value. It accepts the
// canonical hyphenated names produced by String.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "first-fit":
		return FirstFit, nil
	case "best-fit":
		return BestFit, nil
	case "worst-fit":
		return WorstFit, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadStrategy, name)
	}
}

// findFit returns the header offset of the free block chosen for a request
// of need bytes, or format.InvalidOffset when no block qualifies.
func (p *Pool) findFit(need int32) int32 {
	switch p.strategy {
	case BestFit:
		return p.findBestFit(need)
	case WorstFit:
		return p.findWorstFit(need)
	default:
		return p.findFirstFit(need)
	}
}

// findFirstFit stops at the first qualifying free block in address order.
func (p *Pool) findFirstFit(need int32) int32 {
	for off := p.head; off != format.InvalidOffset; {
		blk := p.blockAt(off)
		if blk.Free && blk.Size >= need {
			return off
		}
		off = blk.Next
	}
	return format.InvalidOffset
}

// findBestFit scans the whole list for the smallest qualifying free block.
// Ties go to the block encountered first.
func (p *Pool) findBestFit(need int32) int32 {
	best := format.InvalidOffset
	var bestSize int32
	for off := p.head; off != format.InvalidOffset; {
		blk := p.blockAt(off)
		if blk.Free && blk.Size >= need {
			if best == format.InvalidOffset || blk.Size < bestSize {
				best = off
				bestSize = blk.Size
			}
		}
		off = blk.Next
	}
	return best
}

// findWorstFit scans the whole list for the largest qualifying free block.
// Ties go to the block encountered first.
func (p *Pool) findWorstFit(need int32) int32 {
	worst := format.InvalidOffset
	var worstSize int32
	for off := p.head; off != format.InvalidOffset; {
		blk := p.blockAt(off)
		if blk.Free && blk.Size >= need {
			if worst == format.InvalidOffset || blk.Size > worstSize {
				worst = off
				worstSize = blk.Size
			}
		}
		off = blk.Next
	}
	return worst
}
