// Package config provides YAML-based rules loading and difficulty presets
// for the snake engine.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// SnakeConfig contains every tunable constant of the simulation.
type SnakeConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Players    PlayersConfig    `yaml:"players"`
	Speed      SpeedConfig      `yaml:"speed"`
	Food       FoodConfig       `yaml:"food"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the board.
type GridConfig struct {
	Size        int `yaml:"size"`
	StartMargin int `yaml:"start_margin"` // Distance of spawn points from walls
}

// PlayersConfig defines local players.
type PlayersConfig struct {
	Count      int           `yaml:"count"`
	GraceDelay time.Duration `yaml:"grace_delay"` // Collision to death delay
}

// SpeedConfig defines the tick interval progression.
type SpeedConfig struct {
	Initial   time.Duration `yaml:"initial"`
	Min       time.Duration `yaml:"min"`
	Step      time.Duration `yaml:"step"`       // Reduction per StepEvery points
	StepEvery int           `yaml:"step_every"` // Points per step
}

// FoodConfig defines food reward and the moving-food feature.
type FoodConfig struct {
	Reward        int           `yaml:"reward"`
	MoveThreshold int           `yaml:"move_threshold"` // Score that starts moving food
	MoveInterval  time.Duration `yaml:"move_interval"`  // Interval at the threshold
	MoveStep      time.Duration `yaml:"move_step"`      // Reduction per MoveStepEvery points
	MoveStepEvery int           `yaml:"move_step_every"`
	MoveMin       time.Duration `yaml:"move_min"`
}

// ObstacleConfig defines obstacle progression and placement.
type ObstacleConfig struct {
	Threshold    int `yaml:"threshold"`  // Score of the first obstacle
	StepEvery    int `yaml:"step_every"` // Points per additional obstacle
	Max          int `yaml:"max"`
	SafeDistance int `yaml:"safe_distance"` // Chebyshev radius kept free around the guarded head
}

// DifficultyConfig toggles score-driven progression.
type DifficultyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Preset  string `yaml:"preset"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Validate checks the configuration for values the engine cannot run with.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Grid.Size < 8:
		return fmt.Errorf("%w: grid size %d is below 8", ErrInvalidConfig, c.Grid.Size)
	case c.Grid.StartMargin < 0 || c.Grid.StartMargin*2 >= c.Grid.Size:
		return fmt.Errorf("%w: start margin %d does not fit grid %d", ErrInvalidConfig, c.Grid.StartMargin, c.Grid.Size)
	case c.Players.Count < 1 || c.Players.Count > 4:
		return fmt.Errorf("%w: player count %d outside 1..4", ErrInvalidConfig, c.Players.Count)
	case c.Players.GraceDelay < 0:
		return fmt.Errorf("%w: negative grace delay", ErrInvalidConfig)
	case c.Speed.Min <= 0 || c.Speed.Initial < c.Speed.Min:
		return fmt.Errorf("%w: speed initial %v / min %v", ErrInvalidConfig, c.Speed.Initial, c.Speed.Min)
	case c.Speed.StepEvery <= 0:
		return fmt.Errorf("%w: speed step_every must be positive", ErrInvalidConfig)
	case c.Food.Reward <= 0:
		return fmt.Errorf("%w: food reward must be positive", ErrInvalidConfig)
	case c.Food.MoveStepEvery <= 0 || c.Food.MoveMin <= 0 || c.Food.MoveInterval < c.Food.MoveMin:
		return fmt.Errorf("%w: food movement intervals", ErrInvalidConfig)
	case c.Obstacles.StepEvery <= 0 || c.Obstacles.Max < 0:
		return fmt.Errorf("%w: obstacle progression", ErrInvalidConfig)
	case c.Obstacles.SafeDistance < 0:
		return fmt.Errorf("%w: negative obstacle safe distance", ErrInvalidConfig)
	}
	return nil
}
