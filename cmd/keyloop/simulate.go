package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/keyloop/internal/core"
	"github.com/vovakirdan/keyloop/internal/demo"
	"github.com/vovakirdan/keyloop/internal/diag"
	"github.com/vovakirdan/keyloop/internal/engine"
)

var (
	flagDuration time.Duration
	flagHold     []string
	flagSimSink  string
	flagWidth    int
	flagHeight   int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the demo headless",
	Long: `Run the demo against an in-memory screen with the real clock.

The held actions stay pressed for the whole run. Diagnostics go to the
selected sink and the last frame is printed when the run ends.

Examples:
  keyloop simulate
  keyloop simulate --duration 3s --hold right,run
  keyloop simulate --sink log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().DurationVar(&flagDuration, "duration", 2*time.Second, "How long to run")
	simulateCmd.Flags().StringSliceVar(&flagHold, "hold", nil, "Actions held for the whole run (up, down, left, right, run)")
	simulateCmd.Flags().StringVar(&flagSimSink, "sink", "console", "Diagnostic sink: "+fmt.Sprint(diag.List()))
	simulateCmd.Flags().IntVar(&flagWidth, "width", 0, "Screen width (0 = from config)")
	simulateCmd.Flags().IntVar(&flagHeight, "height", 0, "Screen height (0 = from config)")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if flagDuration <= 0 {
		return fmt.Errorf("--duration must be positive, got %v", flagDuration)
	}
	if !diag.Exists(flagSimSink) {
		return fmt.Errorf("unknown sink %q, available: %v", flagSimSink, diag.List())
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	out := cmd.OutOrStdout()
	sink, err := diag.Create(flagSimSink, diag.Options{Out: out, Logger: logger})
	if err != nil {
		return err
	}

	width, height := cfg.Window.Width, cfg.Window.Height
	if flagWidth > 0 {
		width = flagWidth
	}
	if flagHeight > 0 {
		height = flagHeight
	}

	window := engine.NewHeadlessWindow(width, height)
	loop, scene, err := demo.NewLoop(cfg, window, sink, nil, logger)
	if err != nil {
		return err
	}

	for _, name := range flagHold {
		key, err := firstKey(loop.Context().Bind, name)
		if err != nil {
			return err
		}
		window.Press(key)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), flagDuration)
	defer cancel()

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	fmt.Fprintln(out, window.Frame())
	fmt.Fprintf(out, "ticks=%d frames=%d velocity=%.2f position=%.2f,%.2f\n",
		loop.Context().Ticks, loop.Context().Frames,
		scene.Player.Velocity, scene.Player.X, scene.Player.Y)
	return nil
}

// firstKey returns a physical key bound to the named action.
func firstKey(bind *core.KeyBind, name string) (string, error) {
	a, err := core.ParseAction(strings.TrimSpace(name))
	if err != nil {
		return "", err
	}
	keys := bind.Keys(a)
	if len(keys) == 0 {
		return "", fmt.Errorf("action %s has no bound key", a)
	}
	return keys[0], nil
}
