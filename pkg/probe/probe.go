// Package probe answers birthtime queries against the local filesystem.
//
// A probe has exactly two outcomes: the file's creation time in
// nanoseconds since the Unix epoch, or 0 meaning "unknown". Missing
// files, permission errors, filesystems that do not record a birthtime
// and hosts without an extended stat call all fold into the same 0 —
// an unknown birthtime is a legitimate, expected answer, so the probe
// never surfaces an error to its caller.
//
// Symbolic links are probed as links, never followed. Relative paths
// resolve against the process working directory.
package probe

// Prober is the port the worker dispatches path queries through.
// The production implementation is [OS]; tests substitute fakes.
type Prober interface {
	// Birthtime returns the creation time of path in nanoseconds since
	// the Unix epoch, or 0 when it cannot be determined.
	Birthtime(path string) int64
}

// OS probes the real filesystem through the platform's extended stat
// call (statx on Linux, lstat with a birthtime field on the BSDs).
type OS struct{}

// Birthtime implements Prober.
func (OS) Birthtime(path string) int64 {
	return birthtime(path)
}
