// Package buffer provides the byte arena backing the worker's input stream.
//
// A [Buffer] owns a single growable allocation and tracks a valid-data
// window inside it with two cursors. Bytes before the window have been
// consumed, bytes after it are free space for the next read. The window
// is compacted (slid back to offset zero) before the allocation is grown,
// so capacity is driven by the largest pending frame, not by cumulative
// traffic.
//
// The buffer is allocated once per worker and lives for the process
// lifetime. It grows by doubling and never shrinks.
package buffer
