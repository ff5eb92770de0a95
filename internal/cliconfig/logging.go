package cliconfig

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// Logger returns the package logger. It writes to stderr; stdout belongs
// to the wire protocol.
func Logger() zerolog.Logger {
	return logger
}

// ConfigureLogger applies the log level and quiet settings from cfg and
// returns the resulting logger. Call Validate first; an unparseable
// level falls back to info here.
func ConfigureLogger(cfg Config) zerolog.Logger {
	if cfg.Quiet {
		return logger.Level(zerolog.Disabled)
	}
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return logger.Level(lvl)
}
