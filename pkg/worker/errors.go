package worker

import "errors"

// Worker errors. Any error returned by Run means the protocol stream is
// corrupted or the transport broke mid-write; both are unrecoverable by
// contract and the process should terminate.
var (
	// ErrUnexpectedMessage is returned when the peer sends a message kind
	// the worker never accepts, such as a StatResponse.
	ErrUnexpectedMessage = errors.New("worker: unexpected message kind on input")

	// ErrNotRestartable is returned when Run is called on a worker whose
	// loop has already run. Workers are disposable, one loop per process.
	ErrNotRestartable = errors.New("worker: loop already ran")
)
