// numtap is a terminal number-ordering puzzle: tap the numbers 1..N in order
// before the countdown runs out while the grid keeps reshuffling.
//
// Usage:
//
//	numtap                   - Play with the effective configuration
//	numtap play              - Same as above
//	numtap menu              - Pick difficulty and grid size from a menu
//	numtap presets           - List difficulty presets
//	numtap config            - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible puzzles
//	--config <path>       - Load settings from a YAML file
//	--difficulty <name>   - Apply a preset: easy, normal, hard
//	--grid, --time, --penalty, --shuffle - Override single settings
//	--log-file <path>     - Write logs to a file
//	--debug               - Log taps and reshuffles
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool

	// Setting overrides
	flagGrid    int
	flagTime    float64
	flagPenalty float64
	flagShuffle float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "numtap",
	Short: "numtap - tap the numbers in order before time runs out",
	Long: `numtap is a terminal puzzle. A grid of numbered cells is shown and you
tap them in ascending order before the countdown expires. Wrong taps cost
a share of the remaining time and the cells reshuffle every few seconds.

Available commands:
  play     - Start a game (default)
  menu     - Pick difficulty and grid size from a menu
  presets  - List difficulty presets
  config   - Print the effective configuration

Examples:
  numtap
  numtap --difficulty hard
  numtap --grid 25 --time 90
  numtap config --penalty 10`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	pf.IntVar(&flagGrid, "grid", 0, "Number of cells (1-99)")
	pf.Float64Var(&flagTime, "time", 0, "Game time in seconds")
	pf.Float64Var(&flagPenalty, "penalty", 0, "Share of remaining time lost per wrong tap, in percent")
	pf.Float64Var(&flagShuffle, "shuffle", 0, "Seconds between reshuffles")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(presetsCmd)
}
