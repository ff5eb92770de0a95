// Package statship provides a disposable worker that answers file
// birthtime queries over a framed binary protocol.
//
// A front end spawns the worker, writes StatRequest frames to its stdin
// and reads StatResponse frames from its stdout; the worker exists so
// that slow filesystem-metadata syscalls never block a latency-sensitive
// interactive loop.
//
// Example usage:
//
//	cfg := statship.DefaultConfig()
//	if err := statship.Run(os.Stdin, os.Stdout, nil, cfg); err != nil {
//	    log.Fatal(err)
//	}
package statship

import (
	"io"

	"github.com/statship/statship/pkg/log"
	"github.com/statship/statship/pkg/worker"
)

// Config holds the tunables of the worker loop.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = worker.Config

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return worker.DefaultConfig()
}

// Run executes the worker loop over the given streams until a Shutdown
// frame, end of input, or a fatal protocol error. A nil logger discards
// log output. Probing goes against the real filesystem; embedders that
// need to substitute a prober should use the worker package directly.
func Run(in io.Reader, out io.Writer, logger log.Logger, cfg Config) error {
	return worker.New(in, out, nil, logger, cfg).Run()
}
