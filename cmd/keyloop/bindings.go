package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/keyloop/internal/core"
)

var bindingsCmd = &cobra.Command{
	Use:   "bindings",
	Short: "Show the active key bindings",
	Long:  `Shows which physical keys are bound to each action in the effective configuration.`,
	Args:  cobra.NoArgs,
	RunE:  runBindings,
}

func runBindings(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	bind, err := cfg.Input.KeyBind()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Key bindings:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxLen := len("Action")
	for _, a := range core.AllActions() {
		maxLen = max(maxLen, len(a.String()))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "Action", "Keys")
	fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "------", "----")
	for _, a := range core.AllActions() {
		keys := bind.Keys(a)
		shown := "(unbound)"
		if len(keys) > 0 {
			shown = strings.Join(keys, ", ")
		}
		fmt.Fprintf(out, "  %-*s  %s\n", maxLen, a, shown)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Keys are released after %dms without a first repeat, then %dms between repeats.\n",
		cfg.Input.RepeatDelayMs, cfg.Input.ReleaseAfterMs)
	return nil
}
