package worker

import (
	"errors"
	"fmt"
	"io"

	"github.com/statship/statship/pkg/buffer"
	"github.com/statship/statship/pkg/log"
	"github.com/statship/statship/pkg/probe"
	"github.com/statship/statship/pkg/proto"
)

// Defaults for Config fields left at their zero value.
const (
	DefaultReadBufferSize = 64 * 1024
	DefaultMinReadSpace   = 4 * 1024
)

// Config holds the tunables of the worker loop.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config struct {
	// ReadBufferSize is the initial capacity of the input buffer. The
	// buffer grows by doubling when a single frame outgrows it.
	ReadBufferSize int

	// MinReadSpace is the free tail space guaranteed before each read.
	MinReadSpace int

	// MaxFrameBytes caps the length a frame header may declare. Anything
	// above it is treated as a corrupted stream.
	MaxFrameBytes uint32
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		ReadBufferSize: DefaultReadBufferSize,
		MinReadSpace:   DefaultMinReadSpace,
		MaxFrameBytes:  proto.DefaultMaxFrameSize,
	}
}

// Worker reads request frames from its input stream, probes birthtimes,
// and writes response frames to its output stream. It is strictly
// single-threaded: all overlap comes from running in parallel with the
// parent process, not from goroutines within the worker.
type Worker struct {
	in     io.Reader
	out    io.Writer
	prober probe.Prober
	logger log.Logger
	cfg    Config

	buf     *buffer.Buffer
	scratch []byte  // reused response encode buffer
	times   []int64 // reused probe result slice

	state   State
	started bool

	frames uint64
	paths  uint64
}

// New creates a worker reading from in and writing to out. A nil prober
// defaults to the real filesystem, a nil logger discards output, and
// zero Config fields take their defaults.
func New(in io.Reader, out io.Writer, prober probe.Prober, logger log.Logger, cfg Config) *Worker {
	if prober == nil {
		prober = probe.OS{}
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	if cfg.ReadBufferSize <= 0 {
		cfg.ReadBufferSize = DefaultReadBufferSize
	}
	if cfg.MinReadSpace <= 0 {
		cfg.MinReadSpace = DefaultMinReadSpace
	}
	if cfg.MaxFrameBytes == 0 {
		cfg.MaxFrameBytes = proto.DefaultMaxFrameSize
	}

	return &Worker{
		in:     in,
		out:    out,
		prober: prober,
		logger: logger,
		cfg:    cfg,
		buf:    buffer.New(cfg.ReadBufferSize),
	}
}

// State returns the current lifecycle state of the loop.
func (w *Worker) State() State {
	return w.state
}

// Run executes the worker loop until a ShutdownRequest, end of input, or
// a fatal protocol error. It returns nil on any graceful stop and an
// error only for fatal conditions. Run can be called at most once.
func (w *Worker) Run() error {
	if w.started {
		return ErrNotRestartable
	}
	w.started = true
	w.state = StateRunning
	defer func() { w.state = StateStopped }()

	w.logger.Debug("worker started",
		log.Int("read_buffer", w.cfg.ReadBufferSize),
		log.Any("max_frame_bytes", w.cfg.MaxFrameBytes),
	)

	for w.state == StateRunning {
		w.buf.EnsureSpace(w.cfg.MinReadSpace)
		n, rerr := w.in.Read(w.buf.Free())
		if n > 0 {
			w.buf.Extend(n)
		}

		// Bytes delivered alongside a read error are still valid input;
		// drain them before acting on the error.
		if err := w.drain(); err != nil {
			return err
		}

		if rerr != nil && w.state == StateRunning {
			// End-of-stream and transport errors both mean the parent is
			// done with us. Same outcome, logged apart.
			if errors.Is(rerr, io.EOF) {
				w.logger.Debug("input stream closed")
			} else {
				w.logger.Warn("input read failed", log.Err(rerr))
			}
			w.state = StateStopped
		}
	}

	w.logger.Info("worker stopped",
		log.Any("frames", w.frames),
		log.Any("paths", w.paths),
	)
	return nil
}

// drain extracts and dispatches every complete frame currently buffered.
// It returns on the first partial frame, after a shutdown, or with a
// fatal protocol error.
func (w *Worker) drain() error {
	for w.state == StateRunning {
		payload, frameLen, err := proto.ExtractFrame(w.buf.Window(), w.cfg.MaxFrameBytes)
		if err != nil {
			return fmt.Errorf("extract frame: %w", err)
		}
		if frameLen == 0 {
			return nil
		}

		msg, derr := proto.DecodeMessage(payload)
		// The declared frame length stays authoritative for the consume,
		// decoded or not. Moot here since a decode failure is fatal, but
		// it keeps the invariant in one place.
		w.buf.Consume(frameLen)
		if derr != nil {
			return fmt.Errorf("decode frame: %w", derr)
		}
		w.frames++

		switch m := msg.(type) {
		case proto.StatRequest:
			if err := w.handleStat(m); err != nil {
				return err
			}
		case proto.ShutdownRequest:
			// Honored as soon as it is decoded: frames still sitting in
			// the buffer behind it are never touched.
			w.logger.Debug("shutdown requested")
			w.state = StateStopped
		case proto.StatResponse:
			return fmt.Errorf("%w: %s", ErrUnexpectedMessage, m.Op())
		default:
			return fmt.Errorf("%w: %s", ErrUnexpectedMessage, msg.Op())
		}
	}
	return nil
}

// handleStat probes every path of the request in order and writes one
// response frame. Probe failures are not errors: they fold into the 0
// "unknown birthtime" sentinel, and the request as a whole succeeds.
func (w *Worker) handleStat(req proto.StatRequest) error {
	times := w.times[:0]
	for _, p := range req.Paths {
		times = append(times, w.prober.Birthtime(string(p)))
	}
	w.times = times
	w.paths += uint64(len(req.Paths))

	w.scratch = proto.AppendStatResponse(w.scratch[:0], times)
	if _, err := w.out.Write(w.scratch); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}
