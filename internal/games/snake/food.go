package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/neon-snake/internal/core"
)

// ErrNoFreeCell is returned when a placement has nowhere left to go.
var ErrNoFreeCell = errors.New("snake: no free cell for placement")

// Food is the single active food item.
type Food struct {
	pos core.Cell
}

// Position returns the food cell.
func (f *Food) Position() core.Cell {
	return f.pos
}

// Reposition samples uniformly random cells until one is not covered by any
// snake segment nor by a blocked cell (obstacles).
func (f *Food) Reposition(rng *rand.Rand, grid core.Grid, snakes [][]core.Cell, blocked []core.Cell) error {
	occ := core.NewOccupancy(blocked)
	for _, s := range snakes {
		occ.Add(s...)
	}
	if grid.CountFree(occ.Has) == 0 {
		return ErrNoFreeCell
	}

	for {
		c := grid.RandomCell(rng)
		if !occ.Has(c) {
			f.pos = c
			return nil
		}
	}
}
