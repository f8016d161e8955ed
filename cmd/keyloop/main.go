// keyloop is a terminal demonstration of key binding, per-action key state
// and a fixed-timestep loop with independent update, draw and diagnostic
// cadences.
//
// Usage:
//
//	keyloop play              - Run the demo in the terminal
//	keyloop simulate          - Run the demo headless and print the last frame
//	keyloop bindings          - Show the active key bindings
//	keyloop config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Demo config YAML (default: search ~/.keyloop/configs, ./configs)
//	--preset <name>     - Speed preset: slow, normal, fast (play and simulate)
//	--log-level <level> - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/keyloop/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagPreset   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "keyloop",
	Short: "keyloop - key binding and fixed-timestep loop demo",
	Long: `keyloop moves a color-cycling rectangle around the terminal.

Held actions steer the rectangle, Run accelerates it, and the loop
updates, draws and reports FPS on independent fixed cadences.

Available commands:
  play      - Run the demo in the terminal
  simulate  - Run the demo headless for a fixed duration
  bindings  - Show the active key bindings
  config    - Print the effective configuration

Examples:
  keyloop play
  keyloop play --preset fast
  keyloop simulate --duration 3s --hold right,run
  keyloop bindings --config ./my-demo.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom demo config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Speed preset: "+fmt.Sprint(config.Presets()))
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(bindingsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the demo config and applies the speed preset.
func loadConfig() (config.DemoConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// newLogger builds the process logger. Logs go to --log-file when set,
// otherwise to fallback. The returned closer releases the file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", flagLogFile, err)
		}
		out = f
		//nolint:errcheck // Best-effort close on exit
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "keyloop",
		Level:           level,
	})
	return logger, closer, nil
}
