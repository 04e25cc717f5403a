package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default rules.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Size:        20,
			StartMargin: 3,
		},
		Players: PlayersConfig{
			Count:      1,
			GraceDelay: 500 * time.Millisecond,
		},
		Speed: SpeedConfig{
			Initial:   200 * time.Millisecond,
			Min:       80 * time.Millisecond,
			Step:      3 * time.Millisecond,
			StepEvery: 100,
		},
		Food: FoodConfig{
			Reward:        10,
			MoveThreshold: 150,
			MoveInterval:  2 * time.Second,
			MoveStep:      100 * time.Millisecond,
			MoveStepEvery: 50,
			MoveMin:       800 * time.Millisecond,
		},
		Obstacles: ObstacleConfig{
			Threshold:    250,
			StepEvery:    100,
			Max:          5,
			SafeDistance: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Preset:  string(DifficultyNormal),
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
