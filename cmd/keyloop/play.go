package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/keyloop/internal/core"
	"github.com/vovakirdan/keyloop/internal/demo"
	"github.com/vovakirdan/keyloop/internal/diag"
	"github.com/vovakirdan/keyloop/internal/platform/tui"
)

var (
	flagTheme    string
	flagPollRate int
	flagSink     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the demo in the terminal",
	Long: `Run the demo in the terminal.

Controls (defaults, see 'keyloop bindings'):
  W/A/S/D, arrows - Move
  Space           - Run (hold to accelerate, release to slow down)
  ?               - Toggle full help
  Q/Esc/Ctrl+C    - Quit

Terminals do not report key release; a key counts as released once it has
not repeated for input.release_after_ms.

Examples:
  keyloop play
  keyloop play --theme mono
  keyloop play --log-file keyloop.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagTheme, "theme", "default", "Color theme: default, mono")
	playCmd.Flags().IntVar(&flagPollRate, "poll-rate", 0, "Loop iterations per second (0 = from config)")
	playCmd.Flags().StringVar(&flagSink, "sink", "log", "Diagnostic sink: "+fmt.Sprint(diag.List()))
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	theme, err := tui.ThemeByName(flagTheme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the program; logs go to --log-file or nowhere.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Get terminal size early so the first frame fits
	rc := core.DefaultConfig()
	rc.PollRate = cfg.Loop.PollRate
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	if flagPollRate > 0 {
		rc.PollRate = flagPollRate
	}
	cfg.Loop.PollRate = rc.PollRate

	if !diag.Exists(flagSink) {
		fmt.Fprintf(os.Stderr, "Error: unknown sink %q, available: %v\n", flagSink, diag.List())
		os.Exit(1)
	}
	sink, err := diag.Create(flagSink, diag.Options{Out: io.Discard, Logger: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	window := tui.NewWindow(rc.ScreenW, rc.ScreenH-tui.ChromeRows, cfg.Input.RepeatDelay(), cfg.Input.ReleaseAfter())
	loop, _, err := demo.NewLoop(cfg, window, sink, nil, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logger.Info("starting", "width", rc.ScreenW, "height", rc.ScreenH, "poll_rate", rc.PollRate)
	runErr := tui.Run(ctx, loop, window, tui.Options{
		Title:    cfg.Window.Title,
		Interval: cfg.Loop.PollInterval(),
		Theme:    theme,
	})
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error running demo: %v\n", runErr)
		os.Exit(1)
	}
	logger.Info("stopped", "ticks", loop.Context().Ticks, "frames", loop.Context().Frames)
}
