package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned (wrapped) for any configuration that cannot start a game.
var ErrInvalid = errors.New("invalid config")

const fileName = "config.yaml"

// Load loads the numtap configuration.
// Search order: customPath -> ~/.numtap/config.yaml -> ./configs/numtap.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "numtap.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// Validate reports the first value that would make the board unplayable.
func Validate(cfg Config) error {
	switch {
	case cfg.Board.GridSize < MinGridSize || cfg.Board.GridSize > MaxGridSize:
		return fmt.Errorf("%w: grid_size %d out of range [%d, %d]", ErrInvalid, cfg.Board.GridSize, MinGridSize, MaxGridSize)
	case cfg.Timing.GameTime <= 0:
		return fmt.Errorf("%w: game_time must be positive, got %g", ErrInvalid, cfg.Timing.GameTime)
	case cfg.Timing.ShuffleInterval <= 0:
		return fmt.Errorf("%w: shuffle_interval must be positive, got %g", ErrInvalid, cfg.Timing.ShuffleInterval)
	case cfg.Timing.AnimationDuration < 0:
		return fmt.Errorf("%w: animation_duration must not be negative, got %g", ErrInvalid, cfg.Timing.AnimationDuration)
	case cfg.Penalty.Percent < 0 || cfg.Penalty.Percent > 100:
		return fmt.Errorf("%w: penalty percent %g out of range [0, 100]", ErrInvalid, cfg.Penalty.Percent)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".numtap", filename)
}
