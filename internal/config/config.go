// Package config provides YAML-based puzzle configuration loading and
// difficulty presets for numtap.
package config

// Config contains all tunables for a numtap board.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Penalty PenaltyConfig `yaml:"penalty"`
}

// BoardConfig defines the grid.
type BoardConfig struct {
	GridSize int `yaml:"grid_size"`
}

// TimingConfig defines countdown and reshuffle timing, all in seconds.
type TimingConfig struct {
	GameTime          float64 `yaml:"game_time"`
	ShuffleInterval   float64 `yaml:"shuffle_interval"`
	AnimationDuration float64 `yaml:"animation_duration"`
}

// PenaltyConfig defines the wrong-tap penalty.
type PenaltyConfig struct {
	Percent float64 `yaml:"percent"` // Proportional, not fixed
}

// Limits enforced by Validate.
const (
	MinGridSize = 1
	MaxGridSize = 99 // Cells render at most two digits wide
)

// Overrides holds values set explicitly on the command line.
// Nil fields leave the loaded value untouched.
type Overrides struct {
	GridSize        *int
	GameTime        *float64
	PenaltyPercent  *float64
	ShuffleInterval *float64
}

// Apply copies every non-nil override into cfg.
func (o Overrides) Apply(cfg *Config) {
	if o.GridSize != nil {
		cfg.Board.GridSize = *o.GridSize
	}
	if o.GameTime != nil {
		cfg.Timing.GameTime = *o.GameTime
	}
	if o.PenaltyPercent != nil {
		cfg.Penalty.Percent = *o.PenaltyPercent
	}
	if o.ShuffleInterval != nil {
		cfg.Timing.ShuffleInterval = *o.ShuffleInterval
	}
}
