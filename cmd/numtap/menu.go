package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/numtap/internal/config"
	"github.com/vovakirdan/numtap/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick difficulty and grid size from a menu",
	Long: `Start numtap with a menu to pick the difficulty preset and the grid size.
After you quit a game, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Esc          - Back
  Q            - Quit

Examples:
  numtap menu
  numtap menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	base, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}

	logger, cleanup, err := newLogger()
	if err != nil {
		return err
	}
	defer cleanup()

	gridSize := base.Board.GridSize
	for {
		width, height := terminalSize()
		sel, err := tui.RunMenu(width, height, gridSize)
		if err != nil {
			return err
		}
		if sel == nil {
			return nil
		}

		cfg, err := configWithPreset(cmd, string(sel.Preset))
		if err != nil {
			return err
		}
		if sel.GridSize > 0 {
			gridSize = sel.GridSize
			cfg.Board.GridSize = gridSize
		}
		if err := config.Validate(cfg); err != nil {
			return err
		}

		logger.Info("starting", "grid", cfg.Board.GridSize, "difficulty", sel.Preset)
		if err := play(cfg, logger); err != nil {
			return err
		}
	}
}
