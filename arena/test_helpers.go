package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestPool creates a pool and registers cleanup. Most tests use a 4KB
// pool, matching the smallest realistic embedded configuration.
func newTestPool(t *testing.T, size int32, s Strategy) *Pool {
	t.Helper()
	p, err := New(size, s)
	require.NoError(t, err, "New(%d, %s)", size, s)
	t.Cleanup(p.Close)
	return p
}

// assertInvariants fails the test when the block list no longer covers the
// arena exactly or the running counters disagree with the list.
func assertInvariants(t *testing.T, p *Pool) {
	t.Helper()
	require.NoError(t, p.CheckInvariants())
}

// mustAlloc allocates or fails the test, returning the ref and payload.
func mustAlloc(t *testing.T, p *Pool, size int32) (Ref, []byte) {
	t.Helper()
	ref, buf, err := p.Alloc(size)
	require.NoError(t, err, "Alloc(%d)", size)
	require.NotEqual(t, NilRef, ref)
	return ref, buf
}
