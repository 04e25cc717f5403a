package snake

import (
	"math/rand"

	"github.com/vovakirdan/neon-snake/internal/core"
)

// Obstacles is the permanent obstacle set of one episode.
type Obstacles struct {
	cells        []core.Cell
	max          int
	safeDistance int
}

// NewObstacles creates an empty set capped at maxCells.
func NewObstacles(maxCells, safeDistance int) *Obstacles {
	return &Obstacles{max: maxCells, safeDistance: safeDistance}
}

// Cells returns a copy of the obstacle cells in placement order.
func (o *Obstacles) Cells() []core.Cell {
	return append([]core.Cell(nil), o.cells...)
}

// Len returns the number of placed obstacles.
func (o *Obstacles) Len() int {
	return len(o.cells)
}

// Clear removes every obstacle.
func (o *Obstacles) Clear() {
	o.cells = nil
}

func (o *Obstacles) contains(c core.Cell) bool {
	return HitsObstacle(c, o.cells)
}

// Add places one obstacle by rejection sampling. The cell is never the food
// cell, never an existing obstacle and never within safeDistance (Chebyshev)
// of guard. Only one head is guarded: the first player's.
func (o *Obstacles) Add(rng *rand.Rand, grid core.Grid, food, guard core.Cell) (core.Cell, error) {
	rejected := func(c core.Cell) bool {
		return c == food || o.contains(c) || c.Chebyshev(guard) <= o.safeDistance
	}
	if len(o.cells) >= o.max || grid.CountFree(rejected) == 0 {
		return core.Cell{}, ErrNoFreeCell
	}

	for {
		c := grid.RandomCell(rng)
		if !rejected(c) {
			o.cells = append(o.cells, c)
			return c, nil
		}
	}
}

// FillTo spawns obstacles one at a time until target (capped at max) is
// reached. It never removes obstacles and returns the newly placed cells.
func (o *Obstacles) FillTo(target int, rng *rand.Rand, grid core.Grid, food, guard core.Cell) ([]core.Cell, error) {
	target = min(target, o.max)
	var placed []core.Cell
	for len(o.cells) < target {
		c, err := o.Add(rng, grid, food, guard)
		if err != nil {
			return placed, err
		}
		placed = append(placed, c)
	}
	return placed, nil
}
