package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/numtap/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long:  `Shows what each difficulty preset does to the configured settings.`,
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

func runPresets(cmd *cobra.Command, _ []string) error {
	base, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Difficulty presets:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-8s  %9s  %8s  %8s\n", "Preset", "Game time", "Penalty", "Shuffle")
	fmt.Fprintf(out, "  %-8s  %9s  %8s  %8s\n", "------", "---------", "-------", "-------")

	for _, p := range config.Presets() {
		cfg := base
		config.ApplyPreset(&cfg, p)
		fmt.Fprintf(out, "  %-8s  %8gs  %7g%%  %7gs\n",
			p, cfg.Timing.GameTime, cfg.Penalty.Percent, cfg.Timing.ShuffleInterval)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'numtap --difficulty <preset>' to play one.")
	return nil
}
