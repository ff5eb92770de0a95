package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/statship/statship/internal/cliconfig"
	"github.com/statship/statship/pkg/log"
	"github.com/statship/statship/pkg/probe"
	"github.com/statship/statship/pkg/worker"
)

const helpDescription = `
Answer file birthtime queries over a framed binary protocol on stdin/stdout.

statship is meant to be spawned as a disposable worker by an interactive
front end: the parent writes StatRequest frames to the worker's stdin and
reads StatResponse frames from its stdout, keeping slow filesystem-metadata
syscalls out of its own latency-sensitive loop.

Highlights:
  - One response frame per request frame, strict FIFO, never reordered.
  - Probes creation times via the platform's extended stat call; filesystems
    without birthtime support answer 0 ("unknown") instead of failing.
  - Stops on a Shutdown frame or when stdin closes; the parent owns signals.
  - Logs to stderr only. stdout is the wire.
`

var exampleUsage = strings.TrimSpace(`
  statship < requests.bin > responses.bin
  statship --log-level debug --read-buffer 131072
  statship probe /etc/hosts ./relative/file
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:     "statship",
		Short:   "Answer file birthtime queries over a framed protocol on stdin/stdout",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := loadConfig(cmd, &cfg, cfgPath)
			if err != nil {
				return err
			}

			// The parent process owns lifecycle; interrupt and terminate
			// aimed at the group must not kill the worker mid-frame.
			signal.Ignore(syscall.SIGINT, syscall.SIGTERM)

			w := worker.New(os.Stdin, os.Stdout, probe.OS{}, logger, cfg.WorkerConfig())
			if err := w.Run(); err != nil {
				return fmt.Errorf("worker: %w", err)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.statship/config.toml)")
	root.PersistentFlags().IntVar(&cfg.ReadBufferSize, "read-buffer", cfg.ReadBufferSize, "initial input buffer size in bytes")
	root.PersistentFlags().IntVar(&cfg.MinReadSpace, "min-read-space", cfg.MinReadSpace, "free buffer space guaranteed before each read")
	root.PersistentFlags().IntVar(&cfg.MaxFrameBytes, "max-frame-bytes", cfg.MaxFrameBytes, "largest frame length a header may declare")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "disable all logging")

	root.AddCommand(newProbeCommand(&cfg, &cfgPath))

	if err := root.Execute(); err != nil {
		logger := cliconfig.Logger()
		logger.Error().Err(err).Msg("statship")
		os.Exit(1)
	}
}

// newProbeCommand returns the one-off diagnostic subcommand. It runs the
// same probe code path as the worker loop and prints one line per path:
// the birthtime in nanoseconds (0 for unknown), a tab, and the path.
func newProbeCommand(cfg *cliconfig.Config, cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "probe PATH...",
		Short: "Probe birthtimes directly and print them, bypassing the wire protocol",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(cmd, cfg, *cfgPath); err != nil {
				return err
			}

			p := probe.OS{}
			for _, path := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", p.Birthtime(path), path)
			}
			return nil
		},
	}
}

// loadConfig layers file and environment configuration under any
// explicitly set flags, validates the result, and builds the logger.
func loadConfig(cmd *cobra.Command, cfg *cliconfig.Config, cfgPath string) (log.Logger, error) {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cliconfig.ApplyFileConfig(cfg, fc, changed)
	}

	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return log.NewZerologLogger(cliconfig.ConfigureLogger(*cfg)), nil
}
