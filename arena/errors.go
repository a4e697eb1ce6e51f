package arena

import "errors"

var (
	// ErrClosed indicates an operation on a pool that was never created or
	// has been closed.
	ErrClosed = errors.New("arena: pool is closed")

	// ErrPoolTooSmall indicates a requested pool size smaller than one block header.
	ErrPoolTooSmall = errors.New("arena: pool size smaller than one block header")

	// ErrBadStrategy indicates an unknown fit strategy value.
	ErrBadStrategy = errors.New("arena: unknown fit strategy")

	// ErrSizeZero indicates an allocation request for zero (or negative) bytes.
	ErrSizeZero = errors.New("arena: allocation size must be positive")

	// ErrNoSpace indicates that no free block large enough was found.
	ErrNoSpace = errors.New("arena: no free block large enough")

	// ErrBadRef indicates a reference outside the arena or not at a block start.
	ErrBadRef = errors.New("arena: bad block reference")

	// ErrDoubleFree indicates an attempt to free a block that is already free.
	ErrDoubleFree = errors.New("arena: block already free")
)
