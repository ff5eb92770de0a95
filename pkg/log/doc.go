// Package log provides the logging abstraction used by statship
// components.
//
// The worker owns stdout as its wire transport, so all logging goes to
// stderr (or wherever the embedding program points it). Components take
// the [Logger] interface; the default implementation wraps zerolog and
// tests use [NoopLogger].
package log
