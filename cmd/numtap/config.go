package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/numtap/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, after the config file,
the difficulty preset and any setting flags are applied.

The output is valid YAML and can be saved as ~/.numtap/config.yaml.

Examples:
  numtap config
  numtap config --difficulty hard > ~/.numtap/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := effectiveConfig(cmd)
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
