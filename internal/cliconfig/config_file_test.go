package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFileConfig(t *testing.T) {
	path := writeConfig(t, `
read_buffer_size = 131072
min_read_space = 8192
max_frame_bytes = 1048576
log_level = "debug"
quiet = true
`)

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	cfg := DefaultConfig()
	ApplyFileConfig(&cfg, fc, nil)

	if cfg.ReadBufferSize != 131072 {
		t.Errorf("read buffer: got %d", cfg.ReadBufferSize)
	}
	if cfg.MinReadSpace != 8192 {
		t.Errorf("min read space: got %d", cfg.MinReadSpace)
	}
	if cfg.MaxFrameBytes != 1048576 {
		t.Errorf("max frame bytes: got %d", cfg.MaxFrameBytes)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level: got %q", cfg.LogLevel)
	}
	if !cfg.Quiet {
		t.Errorf("quiet: expected true")
	}
}

func TestApplyFileConfigRespectsFlags(t *testing.T) {
	fc := FileConfig{ReadBufferSize: 1 << 20, LogLevel: "error"}

	cfg := DefaultConfig()
	cfg.ReadBufferSize = 4096
	ApplyFileConfig(&cfg, fc, map[string]bool{"read-buffer": true})

	if cfg.ReadBufferSize != 4096 {
		t.Errorf("file config overrode the read-buffer flag: %d", cfg.ReadBufferSize)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("log level should come from file, got %q", cfg.LogLevel)
	}
}

func TestLoadFileConfigMissing(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadFileConfigInvalidTOML(t *testing.T) {
	path := writeConfig(t, "read_buffer_size = [broken")
	if _, err := LoadFileConfig(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestFileExists(t *testing.T) {
	path := writeConfig(t, "")
	if !FileExists(path) {
		t.Errorf("expected existing file")
	}
	if FileExists(path + ".missing") {
		t.Errorf("expected missing file")
	}
}
