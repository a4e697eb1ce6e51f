package arena

// Ref is an offset-based reference to a block's payload within the arena.
// Client code holds Refs, never block header offsets; the pool translates
// between the two at its boundary.
type Ref = int32

// NilRef is the null block reference. No payload can sit at offset zero
// because the first block header occupies the start of the arena.
const NilRef Ref = 0
