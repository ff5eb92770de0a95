package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables
// (STATSHIP_*). It respects flags that have been explicitly set
// (changed map). Returns an error if a variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setIntFromString("read-buffer", os.Getenv("STATSHIP_READ_BUFFER_SIZE"), &cfg.ReadBufferSize); err != nil {
		return err
	}
	if err := s.setIntFromString("min-read-space", os.Getenv("STATSHIP_MIN_READ_SPACE"), &cfg.MinReadSpace); err != nil {
		return err
	}
	if err := s.setIntFromString("max-frame-bytes", os.Getenv("STATSHIP_MAX_FRAME_BYTES"), &cfg.MaxFrameBytes); err != nil {
		return err
	}

	s.setString("log-level", os.Getenv("STATSHIP_LOG_LEVEL"), &cfg.LogLevel)
	s.setBoolFromString("quiet", os.Getenv("STATSHIP_QUIET"), &cfg.Quiet)

	return nil
}
