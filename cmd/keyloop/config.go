package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/keyloop/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration found by the search order. The output is valid
input for --config. Speed presets are applied by play and simulate at run
time and are not written out, so --preset never compounds on reload.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if _, err := config.ParsePreset(flagPreset); err != nil {
		return err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
