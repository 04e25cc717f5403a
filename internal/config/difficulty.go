package config

import (
	"fmt"
	"time"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty preset %q", ErrInvalidConfig, name)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the speed curve and progression based on a preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *SnakeConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = string(preset)
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	switch preset {
	case DifficultyEasy:
		cfg.Speed.Initial = 250 * time.Millisecond
		cfg.Speed.Min = 120 * time.Millisecond
		cfg.Players.GraceDelay = 800 * time.Millisecond
	case DifficultyHard:
		cfg.Speed.Initial = 140 * time.Millisecond
		cfg.Speed.Min = 60 * time.Millisecond
		cfg.Speed.Step = 5 * time.Millisecond
		cfg.Obstacles.Max = 8
	}
}
