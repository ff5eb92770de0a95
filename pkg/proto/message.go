package proto

// Opcode discriminates the payload shape of a frame.
type Opcode byte

const (
	// OpStatRequest asks for the birthtime of a batch of paths.
	OpStatRequest Opcode = iota + 1

	// OpStatResponse carries one birthtime per requested path.
	OpStatResponse

	// OpShutdown requests orderly worker termination.
	OpShutdown
)

// String returns a human-readable representation of the opcode.
func (op Opcode) String() string {
	switch op {
	case OpStatRequest:
		return "StatRequest"
	case OpStatResponse:
		return "StatResponse"
	case OpShutdown:
		return "Shutdown"
	default:
		return "Unknown"
	}
}

// Message is a decoded frame payload. The set of implementations is
// closed: StatRequest, StatResponse and ShutdownRequest.
type Message interface {
	// Op returns the wire discriminant of the message.
	Op() Opcode
}

// StatRequest is an ordered batch of paths to probe.
//
// Paths alias the decode buffer they were extracted from and are only
// valid until that buffer is reused. The worker consumes a request
// before its next read, so no copy is taken.
type StatRequest struct {
	Paths [][]byte
}

// Op returns OpStatRequest.
func (StatRequest) Op() Opcode { return OpStatRequest }

// StatResponse carries one birthtime per requested path, in request
// order. A value of 0 means the birthtime is unknown.
type StatResponse struct {
	Birthtimes []int64
}

// Op returns OpStatResponse.
func (StatResponse) Op() Opcode { return OpStatResponse }

// ShutdownRequest signals orderly termination. It has no fields.
type ShutdownRequest struct{}

// Op returns OpShutdown.
func (ShutdownRequest) Op() Opcode { return OpShutdown }
