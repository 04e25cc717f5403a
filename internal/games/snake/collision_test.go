package snake

import (
	"testing"

	"github.com/vovakirdan/neon-snake/internal/core"
)

func TestHitsWall(t *testing.T) {
	grid := core.Grid{Size: 20}
	tests := []struct {
		head core.Cell
		want bool
	}{
		{core.Cell{X: 0, Y: 0}, false},
		{core.Cell{X: 19, Y: 19}, false},
		{core.Cell{X: 0, Y: 10}, false},
		{core.Cell{X: 19, Y: 10}, false},
		{core.Cell{X: 10, Y: 0}, false},
		{core.Cell{X: 10, Y: 19}, false},
		{core.Cell{X: -1, Y: 5}, true},
		{core.Cell{X: 5, Y: -1}, true},
		{core.Cell{X: 20, Y: 5}, true},
		{core.Cell{X: 5, Y: 20}, true},
	}

	for _, tc := range tests {
		if got := HitsWall(grid, tc.head); got != tc.want {
			t.Errorf("HitsWall(%v) = %v, expected %v", tc.head, got, tc.want)
		}
	}
}

func TestHitsSelf(t *testing.T) {
	if HitsSelf([]core.Cell{{X: 1, Y: 1}}) {
		t.Error("Single segment cannot hit itself")
	}
	if HitsSelf([]core.Cell{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}}) {
		t.Error("Straight snake should not hit itself")
	}
	if !HitsSelf([]core.Cell{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}, {X: 1, Y: 1}}) {
		t.Error("Head on a body segment should hit")
	}
}

func TestHitsPlayers(t *testing.T) {
	other := NewPlayer(2, core.Cell{X: 5, Y: 5}, core.DirRight)
	other.snake = []core.Cell{{X: 5, Y: 5}, {X: 4, Y: 5}}

	if !HitsPlayers(core.Cell{X: 5, Y: 5}, []*Player{other}) {
		t.Error("Overlapping another head should hit")
	}
	if !HitsPlayers(core.Cell{X: 4, Y: 5}, []*Player{other}) {
		t.Error("Overlapping another body should hit")
	}
	if HitsPlayers(core.Cell{X: 6, Y: 5}, []*Player{other}) {
		t.Error("Free cell should not hit")
	}
	if HitsPlayers(core.Cell{X: 5, Y: 5}, nil) {
		t.Error("No other players means no hit")
	}
}

func TestCheckCollisionsIgnoresFood(t *testing.T) {
	grid := core.Grid{Size: 20}
	p := NewPlayer(1, core.Cell{X: 5, Y: 5}, core.DirRight)

	if CheckCollisions(grid, p, nil, nil) {
		t.Error("Free board should not collide")
	}
	if !CheckCollisions(grid, p, nil, []core.Cell{{X: 5, Y: 5}}) {
		t.Error("Obstacle under head should collide")
	}
}
