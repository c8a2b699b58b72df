package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// presetScale multiplies the loaded timing and penalty values.
type presetScale struct {
	gameTime float64
	penalty  float64
	shuffle  float64
}

var presetScales = map[DifficultyPreset]presetScale{
	DifficultyEasy:   {gameTime: 1.5, penalty: 0.5, shuffle: 1.5},
	DifficultyNormal: {gameTime: 1, penalty: 1, shuffle: 1},
	DifficultyHard:   {gameTime: 0.75, penalty: 2, shuffle: 0.5},
}

// ParsePreset resolves a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := presetScales[p]; !ok {
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalid, name)
	}
	return p, nil
}

// ApplyPreset scales cfg according to the preset.
// Penalty is capped at 100%.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	scale, ok := presetScales[preset]
	if !ok {
		return
	}
	cfg.Timing.GameTime *= scale.gameTime
	cfg.Timing.ShuffleInterval *= scale.shuffle
	cfg.Penalty.Percent *= scale.penalty
	if cfg.Penalty.Percent > 100 {
		cfg.Penalty.Percent = 100
	}
}

// Presets returns the presets from easiest to hardest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}
