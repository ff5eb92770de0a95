package proto

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// HeaderSize is the size of the frame header in bytes: a single
	// little-endian uint32 declaring the total frame length, header
	// included.
	HeaderSize = 4

	// DefaultMaxFrameSize is the default plausibility cap on a declared
	// frame length (1 GiB). A peer declaring more than this is treated as
	// corrupted, not ambitious.
	DefaultMaxFrameSize = 1 << 30
)

// Protocol errors. All of them are fatal: a corrupted byte stream cannot
// be resynchronized safely, so the worker terminates and its parent
// respawns it.
var (
	// ErrFrameTooSmall is returned when a header declares a length below
	// the header size itself.
	ErrFrameTooSmall = errors.New("proto: declared frame length below header size")

	// ErrFrameTooLarge is returned when a header declares a length above
	// the plausibility cap.
	ErrFrameTooLarge = errors.New("proto: declared frame length exceeds maximum")

	// ErrUnknownOpcode is returned when a payload carries a discriminant
	// outside the closed message set.
	ErrUnknownOpcode = errors.New("proto: unknown opcode")

	// ErrTruncatedPayload is returned when a payload's internal fields
	// run past the end of the frame.
	ErrTruncatedPayload = errors.New("proto: payload fields exceed frame length")

	// ErrTrailingBytes is returned when a payload leaves undecoded bytes
	// inside the frame.
	ErrTrailingBytes = errors.New("proto: trailing bytes after payload fields")

	// ErrEmptyPayload is returned when a frame carries no opcode byte.
	ErrEmptyPayload = errors.New("proto: frame has no payload")
)

// ExtractFrame inspects the pending bytes of the input buffer for one
// complete frame.
//
// It returns (nil, 0, nil) when fewer than a header's worth of bytes are
// available or the header declares more bytes than are buffered: a
// partial frame, wait for more input. Otherwise it returns the
// header-stripped payload and the total frame length the caller must
// consume. The declared length is authoritative even if the payload
// later fails to decode.
//
// maxFrame bounds the declared length; pass 0 for DefaultMaxFrameSize.
func ExtractFrame(window []byte, maxFrame uint32) (payload []byte, frameLen int, err error) {
	if maxFrame == 0 {
		maxFrame = DefaultMaxFrameSize
	}
	if len(window) < HeaderSize {
		return nil, 0, nil
	}

	declared := binary.LittleEndian.Uint32(window[:HeaderSize])
	switch {
	case declared < HeaderSize:
		return nil, 0, fmt.Errorf("%w: %d", ErrFrameTooSmall, declared)
	case declared > maxFrame:
		return nil, 0, fmt.Errorf("%w: %d > %d", ErrFrameTooLarge, declared, maxFrame)
	}
	if uint32(len(window)) < declared {
		return nil, 0, nil
	}

	return window[HeaderSize:declared], int(declared), nil
}

// DecodeMessage decodes a header-stripped payload into a typed message.
//
// Returned requests alias the payload slice; see [StatRequest].
func DecodeMessage(payload []byte) (Message, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}

	op := Opcode(payload[0])
	d := decoder{buf: payload[1:]}

	switch op {
	case OpStatRequest:
		count, err := d.uint32()
		if err != nil {
			return nil, err
		}
		// Cap the preallocation by what the payload could physically
		// hold: each path costs at least its length prefix.
		paths := make([][]byte, 0, min(int(count), len(d.buf)/4))
		for i := uint32(0); i < count; i++ {
			p, err := d.bytes()
			if err != nil {
				return nil, err
			}
			paths = append(paths, p)
		}
		if err := d.done(); err != nil {
			return nil, err
		}
		return StatRequest{Paths: paths}, nil

	case OpStatResponse:
		count, err := d.uint32()
		if err != nil {
			return nil, err
		}
		if uint64(len(d.buf)) < uint64(count)*8 {
			return nil, fmt.Errorf("%w: %d values declared, %d bytes remain", ErrTruncatedPayload, count, len(d.buf))
		}
		times := make([]int64, count)
		for i := range times {
			v, err := d.uint64()
			if err != nil {
				return nil, err
			}
			times[i] = int64(v)
		}
		if err := d.done(); err != nil {
			return nil, err
		}
		return StatResponse{Birthtimes: times}, nil

	case OpShutdown:
		if err := d.done(); err != nil {
			return nil, err
		}
		return ShutdownRequest{}, nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownOpcode, payload[0])
	}
}

// AppendStatRequest appends one framed StatRequest to dst and returns
// the extended slice.
func AppendStatRequest(dst []byte, paths [][]byte) []byte {
	size := HeaderSize + 1 + 4
	for _, p := range paths {
		size += 4 + len(p)
	}

	dst = appendHeader(dst, size, OpStatRequest)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(paths)))
	for _, p := range paths {
		dst = binary.LittleEndian.AppendUint32(dst, uint32(len(p)))
		dst = append(dst, p...)
	}
	return dst
}

// AppendStatResponse appends one framed StatResponse to dst and returns
// the extended slice.
func AppendStatResponse(dst []byte, birthtimes []int64) []byte {
	size := HeaderSize + 1 + 4 + 8*len(birthtimes)

	dst = appendHeader(dst, size, OpStatResponse)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(birthtimes)))
	for _, t := range birthtimes {
		dst = binary.LittleEndian.AppendUint64(dst, uint64(t))
	}
	return dst
}

// AppendShutdown appends one framed ShutdownRequest to dst and returns
// the extended slice.
func AppendShutdown(dst []byte) []byte {
	return appendHeader(dst, HeaderSize+1, OpShutdown)
}

func appendHeader(dst []byte, frameLen int, op Opcode) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, uint32(frameLen))
	return append(dst, byte(op))
}

// decoder is a bounds-checked cursor over payload fields.
type decoder struct {
	buf []byte
}

func (d *decoder) uint32() (uint32, error) {
	if len(d.buf) < 4 {
		return 0, fmt.Errorf("%w: want 4 bytes, have %d", ErrTruncatedPayload, len(d.buf))
	}
	v := binary.LittleEndian.Uint32(d.buf)
	d.buf = d.buf[4:]
	return v, nil
}

func (d *decoder) uint64() (uint64, error) {
	if len(d.buf) < 8 {
		return 0, fmt.Errorf("%w: want 8 bytes, have %d", ErrTruncatedPayload, len(d.buf))
	}
	v := binary.LittleEndian.Uint64(d.buf)
	d.buf = d.buf[8:]
	return v, nil
}

func (d *decoder) bytes() ([]byte, error) {
	n, err := d.uint32()
	if err != nil {
		return nil, err
	}
	if uint64(len(d.buf)) < uint64(n) {
		return nil, fmt.Errorf("%w: want %d bytes, have %d", ErrTruncatedPayload, n, len(d.buf))
	}
	b := d.buf[:n]
	d.buf = d.buf[n:]
	return b, nil
}

func (d *decoder) done() error {
	if len(d.buf) != 0 {
		return fmt.Errorf("%w: %d bytes", ErrTrailingBytes, len(d.buf))
	}
	return nil
}
