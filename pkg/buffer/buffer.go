package buffer

import "fmt"

// DefaultSize is the initial allocation used by [New] when the caller
// passes a non-positive size.
const DefaultSize = 64 * 1024

// Buffer is an owned, growable byte arena with a movable valid-data window.
//
// The window [start, end) holds bytes that have been read from the input
// stream but not yet consumed by the frame codec. The invariant
// 0 <= start <= end <= cap(data) holds at all times.
type Buffer struct {
	data  []byte
	start int
	end   int
}

// New creates a buffer with the given initial capacity.
func New(size int) *Buffer {
	if size <= 0 {
		size = DefaultSize
	}
	return &Buffer{data: make([]byte, size)}
}

// Len returns the number of pending (unconsumed) bytes.
func (b *Buffer) Len() int {
	return b.end - b.start
}

// Cap returns the size of the backing allocation.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Window returns the pending bytes. The slice aliases the backing
// allocation and is invalidated by the next call to EnsureSpace, Extend
// or Consume.
func (b *Buffer) Window() []byte {
	return b.data[b.start:b.end]
}

// Free returns the writable tail of the allocation. The next stream read
// fills this slice; follow it with Extend to publish the bytes into the
// window.
func (b *Buffer) Free() []byte {
	return b.data[b.end:]
}

// EnsureSpace guarantees at least n free bytes at the tail. It first
// reclaims consumed space by compacting the window to offset zero, and
// only grows the allocation (by doubling) if compaction was not enough.
func (b *Buffer) EnsureSpace(n int) {
	if n <= 0 {
		panic(fmt.Sprintf("buffer: EnsureSpace(%d): size must be positive", n))
	}
	if len(b.data)-b.end >= n {
		return
	}

	// Compaction is a memmove, never an allocation.
	if b.start > 0 {
		copy(b.data, b.data[b.start:b.end])
		b.end -= b.start
		b.start = 0
	}
	if len(b.data)-b.end >= n {
		return
	}

	// Double until the pending bytes plus the requested space fit, so the
	// number of reallocations stays logarithmic in the largest frame size.
	size := len(b.data)
	for size-b.end < n {
		size *= 2
	}
	grown := make([]byte, size)
	copy(grown, b.data[:b.end])
	b.data = grown
}

// Extend publishes n bytes previously written into Free.
func (b *Buffer) Extend(n int) {
	if n < 0 || b.end+n > len(b.data) {
		panic(fmt.Sprintf("buffer: Extend(%d) out of range (end=%d cap=%d)", n, b.end, len(b.data)))
	}
	b.end += n
}

// Consume advances the window start by n bytes. When the window empties
// it is reset to offset zero so the start cursor cannot drift unboundedly.
func (b *Buffer) Consume(n int) {
	if n < 0 || n > b.Len() {
		panic(fmt.Sprintf("buffer: Consume(%d) out of range (pending=%d)", n, b.Len()))
	}
	b.start += n
	if b.start == b.end {
		b.start = 0
		b.end = 0
	}
}

// Reset empties the buffer without releasing the backing allocation.
func (b *Buffer) Reset() {
	b.start = 0
	b.end = 0
}
