// Package cliconfig holds the CLI-facing configuration for statship,
// layered by precedence: defaults, then config file, then environment,
// then explicitly set flags.
package cliconfig

import (
	"fmt"
	"math"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/statship/statship/pkg/proto"
	"github.com/statship/statship/pkg/worker"
)

// Config holds CLI configuration for the statship worker.
type Config struct {
	// ReadBufferSize is the initial input buffer capacity in bytes.
	ReadBufferSize int

	// MinReadSpace is the free tail space guaranteed before each read.
	MinReadSpace int

	// MaxFrameBytes caps the total length a frame header may declare.
	MaxFrameBytes int

	// LogLevel is a zerolog level name (trace, debug, info, warn, error).
	LogLevel string

	// Quiet disables all logging output.
	Quiet bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		ReadBufferSize: worker.DefaultReadBufferSize,
		MinReadSpace:   worker.DefaultMinReadSpace,
		MaxFrameBytes:  proto.DefaultMaxFrameSize,
		LogLevel:       zerolog.LevelInfoValue,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.ReadBufferSize < proto.HeaderSize {
		return fmt.Errorf("read-buffer must be at least the frame header size (%d)", proto.HeaderSize)
	}
	if c.MinReadSpace <= 0 {
		return fmt.Errorf("min-read-space must be positive")
	}
	if c.MinReadSpace > c.ReadBufferSize {
		return fmt.Errorf("min-read-space (%d) must not exceed read-buffer (%d)", c.MinReadSpace, c.ReadBufferSize)
	}
	if c.MaxFrameBytes <= proto.HeaderSize {
		return fmt.Errorf("max-frame-bytes must exceed the frame header size (%d)", proto.HeaderSize)
	}
	if int64(c.MaxFrameBytes) > math.MaxUint32 {
		return fmt.Errorf("max-frame-bytes must fit the 32-bit length header")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}
	return nil
}

// WorkerConfig converts the CLI configuration into the worker's.
func (c Config) WorkerConfig() worker.Config {
	return worker.Config{
		ReadBufferSize: c.ReadBufferSize,
		MinReadSpace:   c.MinReadSpace,
		MaxFrameBytes:  uint32(c.MaxFrameBytes),
	}
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't
// been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses and sets an int value if valid and flag not changed.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	s.setInt(flag, n, dst)
	return nil
}

// setBoolFromString parses and sets a bool value if valid and flag not changed.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	if b, err := strconv.ParseBool(value); err == nil {
		*dst = b
	}
}
