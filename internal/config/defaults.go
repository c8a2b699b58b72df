package config

import (
	_ "embed"
)

//go:embed defaults/numtap.yaml
var defaultYAML []byte

// Default returns the hard-coded default configuration.
// It mirrors defaults/numtap.yaml and is used if the embed cannot be parsed.
func Default() Config {
	return Config{
		Board: BoardConfig{
			GridSize: 20,
		},
		Timing: TimingConfig{
			GameTime:          60,
			ShuffleInterval:   2,
			AnimationDuration: 0.2,
		},
		Penalty: PenaltyConfig{
			Percent: 5,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
