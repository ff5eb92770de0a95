package cliconfig

import "testing"

func TestApplyEnvConfig(t *testing.T) {
	t.Setenv("STATSHIP_READ_BUFFER_SIZE", "32768")
	t.Setenv("STATSHIP_LOG_LEVEL", "warn")
	t.Setenv("STATSHIP_QUIET", "true")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, nil); err != nil {
		t.Fatalf("apply env: %v", err)
	}

	if cfg.ReadBufferSize != 32768 {
		t.Errorf("read buffer: got %d", cfg.ReadBufferSize)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("log level: got %q", cfg.LogLevel)
	}
	if !cfg.Quiet {
		t.Errorf("quiet: expected true")
	}
}

func TestApplyEnvConfigRespectsFlags(t *testing.T) {
	t.Setenv("STATSHIP_READ_BUFFER_SIZE", "32768")

	cfg := DefaultConfig()
	cfg.ReadBufferSize = 4096
	if err := ApplyEnvConfig(&cfg, map[string]bool{"read-buffer": true}); err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if cfg.ReadBufferSize != 4096 {
		t.Errorf("env overrode the read-buffer flag: %d", cfg.ReadBufferSize)
	}
}

func TestApplyEnvConfigInvalidInt(t *testing.T) {
	t.Setenv("STATSHIP_MAX_FRAME_BYTES", "lots")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, nil); err == nil {
		t.Fatalf("expected parse error")
	}
}
