package snake

import (
	"time"

	"github.com/vovakirdan/neon-snake/internal/config"
)

// Difficulty derives tick speed, moving-food interval and obstacle count
// from the highest score of the episode.
type Difficulty struct {
	speed     config.SpeedConfig
	food      config.FoodConfig
	obstacles config.ObstacleConfig
	enabled   bool
}

// NewDifficulty creates a controller from the loaded rules.
func NewDifficulty(cfg config.SnakeConfig) *Difficulty {
	return &Difficulty{
		speed:     cfg.Speed,
		food:      cfg.Food,
		obstacles: cfg.Obstacles,
		enabled:   cfg.Difficulty.Enabled,
	}
}

// IsEnabled returns whether score-driven progression is active.
func (d *Difficulty) IsEnabled() bool {
	return d.enabled
}

// InitialSpeed returns the tick interval at episode start.
func (d *Difficulty) InitialSpeed() time.Duration {
	return d.speed.Initial
}

// Speed returns max(min, initial - floor(maxScore/stepEvery)*step).
func (d *Difficulty) Speed(maxScore int) time.Duration {
	if !d.enabled {
		return d.speed.Initial
	}
	reduction := time.Duration(maxScore/d.speed.StepEvery) * d.speed.Step
	return max(d.speed.Min, d.speed.Initial-reduction)
}

// FoodMoves reports whether maxScore has reached the moving-food threshold.
func (d *Difficulty) FoodMoves(maxScore int) bool {
	return d.enabled && maxScore >= d.food.MoveThreshold
}

// FoodMoveInterval returns max(base - floor((maxScore-threshold)/stepEvery)*step, min).
func (d *Difficulty) FoodMoveInterval(maxScore int) time.Duration {
	steps := max(maxScore-d.food.MoveThreshold, 0) / d.food.MoveStepEvery
	return max(d.food.MoveInterval-time.Duration(steps)*d.food.MoveStep, d.food.MoveMin)
}

// ObstaclesActive reports whether maxScore has reached the obstacle threshold.
func (d *Difficulty) ObstaclesActive(maxScore int) bool {
	return d.enabled && maxScore >= d.obstacles.Threshold
}

// ObstacleTarget returns min(floor((maxScore-threshold)/stepEvery)+1, max),
// or zero below the threshold.
func (d *Difficulty) ObstacleTarget(maxScore int) int {
	if !d.ObstaclesActive(maxScore) {
		return 0
	}
	return min((maxScore-d.obstacles.Threshold)/d.obstacles.StepEvery+1, d.obstacles.Max)
}
