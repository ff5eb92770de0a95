package buffer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func fill(t *testing.T, b *Buffer, p []byte) {
	t.Helper()
	b.EnsureSpace(len(p))
	n := copy(b.Free(), p)
	require.Equal(t, len(p), n)
	b.Extend(n)
}

func TestWindowRoundTrip(t *testing.T) {
	b := New(16)

	fill(t, b, []byte("hello"))
	require.Equal(t, 5, b.Len())
	require.True(t, bytes.Equal([]byte("hello"), b.Window()))

	b.Consume(2)
	require.Equal(t, 3, b.Len())
	require.True(t, bytes.Equal([]byte("llo"), b.Window()))
}

func TestConsumeAllResetsCursors(t *testing.T) {
	b := New(16)

	fill(t, b, []byte("abcdef"))
	b.Consume(6)

	require.Equal(t, 0, b.Len())
	require.Equal(t, 16, len(b.Free()), "empty buffer should expose its full capacity")
}

func TestEnsureSpaceCompactsBeforeGrowing(t *testing.T) {
	b := New(8)

	fill(t, b, []byte("12345678"))
	b.Consume(6)

	// 6 bytes of garbage precede the window; compaction alone must satisfy
	// the request without reallocating.
	b.EnsureSpace(6)
	require.Equal(t, 8, b.Cap())
	require.True(t, bytes.Equal([]byte("78"), b.Window()))
}

func TestEnsureSpaceDoubles(t *testing.T) {
	b := New(8)

	fill(t, b, []byte("12345678"))
	b.EnsureSpace(1)
	require.Equal(t, 16, b.Cap())
	require.True(t, bytes.Equal([]byte("12345678"), b.Window()))

	b.EnsureSpace(100)
	require.Equal(t, 128, b.Cap())
}

func TestGrowthTracksLiveDataNotHistory(t *testing.T) {
	b := New(64)

	// Stream far more traffic through the buffer than its capacity, in
	// chunks that are always fully consumed. Capacity must not move: growth
	// is driven by pending bytes, never by cumulative throughput.
	chunk := make([]byte, 48)
	for i := 0; i < 1000; i++ {
		fill(t, b, chunk)
		b.Consume(len(chunk))
	}
	require.Equal(t, 64, b.Cap())
}

func TestConsumeOutOfRangePanics(t *testing.T) {
	b := New(8)
	fill(t, b, []byte("ab"))

	require.Panics(t, func() { b.Consume(3) })
	require.Panics(t, func() { b.Consume(-1) })
}

func TestExtendOutOfRangePanics(t *testing.T) {
	b := New(8)

	require.Panics(t, func() { b.Extend(9) })
	require.Panics(t, func() { b.Extend(-1) })
}

func TestReset(t *testing.T) {
	b := New(8)
	fill(t, b, []byte("abc"))
	b.Consume(1)

	b.Reset()
	require.Equal(t, 0, b.Len())
	require.Equal(t, 8, b.Cap())
}

func TestNewDefaultSize(t *testing.T) {
	require.Equal(t, DefaultSize, New(0).Cap())
	require.Equal(t, DefaultSize, New(-5).Cap())
}
