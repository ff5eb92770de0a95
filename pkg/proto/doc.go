// Package proto implements the wire protocol spoken between the worker
// and its parent process.
//
// Every message travels as one frame:
//
//	[4 bytes] total frame length, little-endian uint32, header included
//	[1 byte]  opcode
//	[N bytes] opcode-specific fields
//
// The header length is authoritative for synchronization: the framer
// consumes exactly the declared number of bytes per frame, and payload
// decoding is layered beneath framing rather than feeding back into it.
// A payload whose internal fields disagree with the frame length is a
// fatal decode error, but it can never desynchronize the byte stream.
//
// # Messages
//
//   - [StatRequest] (opcode 1): uint32 path count, then per path a
//     uint32 length prefix and the raw path bytes. Paths are opaque byte
//     strings, not required to be valid UTF-8.
//   - [StatResponse] (opcode 2): uint32 value count, then that many
//     int64 values, nanoseconds since the Unix epoch, 0 meaning the
//     birthtime is unknown. Values appear in request order.
//   - [ShutdownRequest] (opcode 3): no fields.
//
// The message set is closed. Dispatch over it is an exhaustive type
// switch, not an open registry.
package proto
