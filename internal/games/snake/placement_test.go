package snake

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/neon-snake/internal/core"
)

func TestFoodAvoidsSnakesAndObstacles(t *testing.T) {
	grid := core.Grid{Size: 8}
	rng := rand.New(rand.NewSource(7))

	// Leave only a handful of free cells so rejection sampling is exercised.
	var snake []core.Cell
	for y := range 8 {
		for x := range 8 {
			if y < 7 || x < 4 {
				snake = append(snake, core.Cell{X: x, Y: y})
			}
		}
	}
	blocked := []core.Cell{{X: 4, Y: 7}}
	occ := core.NewOccupancy(snake, blocked)

	var f Food
	for range 1000 {
		if err := f.Reposition(rng, grid, [][]core.Cell{snake}, blocked); err != nil {
			t.Fatalf("Reposition error: %v", err)
		}
		if occ.Has(f.Position()) {
			t.Fatalf("Food placed on occupied cell %v", f.Position())
		}
		if !grid.InBounds(f.Position()) {
			t.Fatalf("Food placed out of bounds at %v", f.Position())
		}
	}
}

func TestFoodFullBoard(t *testing.T) {
	grid := core.Grid{Size: 8}
	var all []core.Cell
	for y := range 8 {
		for x := range 8 {
			all = append(all, core.Cell{X: x, Y: y})
		}
	}

	var f Food
	err := f.Reposition(rand.New(rand.NewSource(1)), grid, [][]core.Cell{all}, nil)
	if !errors.Is(err, ErrNoFreeCell) {
		t.Errorf("Expected ErrNoFreeCell, got %v", err)
	}
}

func TestObstacleAddRespectsConstraints(t *testing.T) {
	grid := core.Grid{Size: 20}
	rng := rand.New(rand.NewSource(3))
	food := core.Cell{X: 10, Y: 10}
	guard := core.Cell{X: 5, Y: 5}

	for trial := range 200 {
		o := NewObstacles(5, 2)
		placed, err := o.FillTo(5, rng, grid, food, guard)
		if err != nil {
			t.Fatalf("trial %d: FillTo error: %v", trial, err)
		}
		if len(placed) != 5 || o.Len() != 5 {
			t.Fatalf("trial %d: expected 5 obstacles, got %d", trial, o.Len())
		}

		seen := core.NewOccupancy()
		for _, c := range o.Cells() {
			if c == food {
				t.Errorf("Obstacle on food at %v", c)
			}
			if c.Chebyshev(guard) <= 2 {
				t.Errorf("Obstacle %v within safe distance of %v", c, guard)
			}
			if seen.Has(c) {
				t.Errorf("Duplicate obstacle at %v", c)
			}
			seen.Add(c)
		}
	}
}

func TestObstacleFillToIsMonotonicAndCapped(t *testing.T) {
	grid := core.Grid{Size: 20}
	rng := rand.New(rand.NewSource(9))
	o := NewObstacles(3, 2)

	if _, err := o.FillTo(2, rng, grid, core.Cell{}, core.Cell{X: 10, Y: 10}); err != nil {
		t.Fatal(err)
	}
	first := o.Cells()

	placed, err := o.FillTo(1, rng, grid, core.Cell{}, core.Cell{X: 10, Y: 10})
	if err != nil || len(placed) != 0 || o.Len() != 2 {
		t.Errorf("Lower target should not remove obstacles, got %d (%v)", o.Len(), err)
	}

	if _, err := o.FillTo(10, rng, grid, core.Cell{}, core.Cell{X: 10, Y: 10}); err != nil {
		t.Fatal(err)
	}
	if o.Len() != 3 {
		t.Errorf("Target should be capped at max 3, got %d", o.Len())
	}
	for i, c := range first {
		if o.Cells()[i] != c {
			t.Errorf("Existing obstacle %d moved from %v", i, c)
		}
	}

	if _, err := o.Add(rng, grid, core.Cell{}, core.Cell{}); !errors.Is(err, ErrNoFreeCell) {
		t.Errorf("Add beyond max should fail, got %v", err)
	}

	o.Clear()
	if o.Len() != 0 {
		t.Error("Clear should remove every obstacle")
	}
}

func TestObstacleNoCandidates(t *testing.T) {
	// A safe radius covering the whole board leaves nothing to sample.
	o := NewObstacles(5, 10)
	_, err := o.Add(rand.New(rand.NewSource(1)), core.Grid{Size: 8}, core.Cell{}, core.Cell{X: 4, Y: 4})
	if !errors.Is(err, ErrNoFreeCell) {
		t.Errorf("Expected ErrNoFreeCell, got %v", err)
	}
}
