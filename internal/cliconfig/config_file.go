package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with TOML field names. Pointer booleans
// distinguish "unset" from "false".
type FileConfig struct {
	ReadBufferSize int    `toml:"read_buffer_size"`
	MinReadSpace   int    `toml:"min_read_space"`
	MaxFrameBytes  int    `toml:"max_frame_bytes"`
	LogLevel       string `toml:"log_level"`
	Quiet          *bool  `toml:"quiet"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.statship/config.toml if the home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".statship", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setInt("read-buffer", fc.ReadBufferSize, &cfg.ReadBufferSize)
	s.setInt("min-read-space", fc.MinReadSpace, &cfg.MinReadSpace)
	s.setInt("max-frame-bytes", fc.MaxFrameBytes, &cfg.MaxFrameBytes)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setBool("quiet", fc.Quiet, &cfg.Quiet)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
