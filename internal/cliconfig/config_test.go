package cliconfig

import (
	"testing"

	"github.com/statship/statship/pkg/proto"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got: %v", err)
	}
}

func TestValidateRejectsBadSizes(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny read buffer", func(c *Config) { c.ReadBufferSize = proto.HeaderSize - 1 }},
		{"zero min read space", func(c *Config) { c.MinReadSpace = 0 }},
		{"min space above buffer", func(c *Config) { c.MinReadSpace = c.ReadBufferSize + 1 }},
		{"frame cap below header", func(c *Config) { c.MaxFrameBytes = proto.HeaderSize }},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }},
	}

	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestWorkerConfigConversion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReadBufferSize = 1024
	cfg.MinReadSpace = 512
	cfg.MaxFrameBytes = 2048

	wc := cfg.WorkerConfig()
	if wc.ReadBufferSize != 1024 || wc.MinReadSpace != 512 || wc.MaxFrameBytes != 2048 {
		t.Fatalf("conversion mismatch: %+v", wc)
	}
}

func TestSetterRespectsChangedFlags(t *testing.T) {
	cfg := DefaultConfig()
	orig := cfg.ReadBufferSize

	s := newConfigSetter(map[string]bool{"read-buffer": true})
	s.setInt("read-buffer", 999, &cfg.ReadBufferSize)
	if cfg.ReadBufferSize != orig {
		t.Fatalf("setter overrode an explicitly set flag")
	}

	s = newConfigSetter(nil)
	s.setInt("read-buffer", 999, &cfg.ReadBufferSize)
	if cfg.ReadBufferSize != 999 {
		t.Fatalf("setter did not apply value, got %d", cfg.ReadBufferSize)
	}
}
