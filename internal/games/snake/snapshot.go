package snake

import (
	"time"

	"github.com/vovakirdan/neon-snake/internal/core"
)

// PlayerView is the render-ready state of one player.
type PlayerView struct {
	ID       int
	Name     string
	Color    core.Color
	Cells    []core.Cell // Head first
	PrevHead core.Cell
	Dir      core.Direction
	Score    int
	Alive    bool
	Dying    bool
}

// Snapshot captures the complete game state for rendering, determinism
// testing and replay.
type Snapshot struct {
	Tick      uint64
	Episode   string
	State     State
	GridSize  int
	Speed     time.Duration
	Players   []PlayerView
	Food      core.Cell
	Obstacles []core.Cell
	FoodMoves bool
	HighScore int
}

// Snapshot returns the current game snapshot. Slices are copies.
func (e *Engine) Snapshot() Snapshot {
	views := make([]PlayerView, 0, len(e.players))
	for _, p := range e.players {
		views = append(views, PlayerView{
			ID:       p.ID,
			Name:     p.Name,
			Color:    p.Color,
			Cells:    p.Body(),
			PrevHead: p.PrevHead(),
			Dir:      p.Direction(),
			Score:    p.Score(),
			Alive:    p.Alive(),
			Dying:    p.Dying(),
		})
	}

	return Snapshot{
		Tick:      e.tick,
		Episode:   e.episode,
		State:     e.states.Current(),
		GridSize:  e.grid.Size,
		Speed:     e.speed,
		Players:   views,
		Food:      e.food.Position(),
		Obstacles: e.obstacles.Cells(),
		FoodMoves: e.foodMoving,
		HighScore: e.highScore,
	}
}

// MaxScore returns the highest score in the snapshot.
func (s Snapshot) MaxScore() int {
	best := 0
	for _, p := range s.Players {
		best = max(best, p.Score)
	}
	return best
}
