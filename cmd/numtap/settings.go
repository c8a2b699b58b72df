package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/numtap/internal/config"
)

// effectiveConfig loads the config file, applies the difficulty preset and
// then any setting flags given explicitly.
func effectiveConfig(cmd *cobra.Command) (config.Config, error) {
	return configWithPreset(cmd, flagDifficulty)
}

func configWithPreset(cmd *cobra.Command, presetName string) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	preset, err := config.ParsePreset(presetName)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)

	var o config.Overrides
	flags := cmd.Flags()
	if flags.Changed("grid") {
		o.GridSize = &flagGrid
	}
	if flags.Changed("time") {
		o.GameTime = &flagTime
	}
	if flags.Changed("penalty") {
		o.PenaltyPercent = &flagPenalty
	}
	if flags.Changed("shuffle") {
		o.ShuffleInterval = &flagShuffle
	}
	o.Apply(&cfg)

	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger builds the logger for a session. The TUI owns the terminal, so
// logs only go to --log-file; without one they are discarded.
func newLogger() (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	cleanup := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		cleanup = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "numtap",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, cleanup, nil
}
