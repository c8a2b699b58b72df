package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/numtap/internal/config"
	"github.com/vovakirdan/numtap/internal/core"
	"github.com/vovakirdan/numtap/internal/platform/tui"
	"github.com/vovakirdan/numtap/internal/puzzle"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start a game with the effective configuration.

Controls:
  0-9 Enter        - Tap the typed number
  Arrows/hjkl      - Move the cursor
  Space            - Tap the cell under the cursor
  Mouse            - Click a cell to tap it
  N                - New game (Enter also works after a game ends)
  P/Esc            - Pause
  S                - Settings panel (arrows adjust)
  Ctrl+S / Ctrl+Y  - Save / copy the board
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More time, gentler penalty, slower reshuffles
  normal - Configured values as-is
  hard   - Less time, harsher penalty, faster reshuffles

Examples:
  numtap play
  numtap play --difficulty easy
  numtap play --config ./my-numtap.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}

	logger, cleanup, err := newLogger()
	if err != nil {
		return err
	}
	defer cleanup()

	logger.Info("starting", "grid", cfg.Board.GridSize, "difficulty", flagDifficulty, "seed", flagSeed)
	return play(cfg, logger)
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// play runs one TUI session until the user quits.
func play(cfg config.Config, logger *log.Logger) error {
	width, height := terminalSize()

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Settings: puzzle.SettingsFrom(cfg),
		Logger:   logger,
	}

	if err := tui.Run(opts); err != nil {
		logger.Error("game exited", "error", err)
		return err
	}
	return nil
}
