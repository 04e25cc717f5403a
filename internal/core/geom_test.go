package core

import (
	"math/rand"
	"testing"
)

func TestDirectionIsOpposite(t *testing.T) {
	for _, c := range Directions {
		for _, d := range Directions {
			want := d.DX == -c.DX && d.DY == -c.DY
			if got := c.IsOpposite(d); got != want {
				t.Errorf("%v.IsOpposite(%v) = %v, expected %v", c, d, got, want)
			}
		}
	}
	if DirUp.Opposite() != DirDown || DirLeft.Opposite() != DirRight {
		t.Error("Opposite() should negate both components")
	}
}

func TestDirectionParse(t *testing.T) {
	tests := []struct {
		name string
		want Direction
		ok   bool
	}{
		{"up", DirUp, true},
		{"down", DirDown, true},
		{"left", DirLeft, true},
		{"right", DirRight, true},
		{"sideways", Direction{}, false},
		{"", Direction{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseDirection(tc.name)
			if ok != tc.ok || got != tc.want {
				t.Errorf("ParseDirection(%q) = %v, %v; expected %v, %v", tc.name, got, ok, tc.want, tc.ok)
			}
		})
	}

	if (Direction{DX: 1, DY: 1}).Valid() {
		t.Error("diagonal should not be a valid direction")
	}
}

func TestCellAddAndDistance(t *testing.T) {
	c := Cell{X: 3, Y: 10}
	if got := c.Add(DirRight); got != (Cell{X: 4, Y: 10}) {
		t.Errorf("Add(right) = %v", got)
	}
	if got := c.Add(DirUp); got != (Cell{X: 3, Y: 9}) {
		t.Errorf("Add(up) = %v", got)
	}

	tests := []struct {
		a, b Cell
		want int
	}{
		{Cell{0, 0}, Cell{0, 0}, 0},
		{Cell{0, 0}, Cell{2, 1}, 2},
		{Cell{5, 5}, Cell{2, 9}, 4},
		{Cell{5, 5}, Cell{7, 7}, 2},
	}
	for _, tc := range tests {
		if got := tc.a.Chebyshev(tc.b); got != tc.want {
			t.Errorf("%v.Chebyshev(%v) = %d, expected %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestGridBounds(t *testing.T) {
	g := Grid{Size: 20}

	tests := []struct {
		name   string
		cell   Cell
		inside bool
		edge   bool
	}{
		{"origin", Cell{0, 0}, true, true},
		{"center", Cell{10, 10}, true, false},
		{"last column", Cell{19, 5}, true, true},
		{"last row", Cell{5, 19}, true, true},
		{"left of board", Cell{-1, 5}, false, false},
		{"right of board", Cell{20, 5}, false, false},
		{"above board", Cell{5, -1}, false, false},
		{"below board", Cell{5, 20}, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.InBounds(tc.cell); got != tc.inside {
				t.Errorf("InBounds(%v) = %v, expected %v", tc.cell, got, tc.inside)
			}
			if got := g.OnEdge(tc.cell); got != tc.edge {
				t.Errorf("OnEdge(%v) = %v, expected %v", tc.cell, got, tc.edge)
			}
		})
	}
}

func TestGridRandomCellAndFree(t *testing.T) {
	g := Grid{Size: 5}
	rng := rand.New(rand.NewSource(7))
	for range 200 {
		if c := g.RandomCell(rng); !g.InBounds(c) {
			t.Fatalf("RandomCell() returned out-of-bounds %v", c)
		}
	}

	occ := NewOccupancy([]Cell{{0, 0}, {1, 1}}, []Cell{{1, 1}, {4, 4}})
	if got := g.CountFree(occ.Has); got != g.Area()-3 {
		t.Errorf("CountFree() = %d, expected %d", got, g.Area()-3)
	}
	if !occ.Has(Cell{4, 4}) || occ.Has(Cell{2, 2}) {
		t.Error("Occupancy.Has() mismatch")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)
	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (30, 25)", r.Right(), r.Bottom())
	}
	if !r.Contains(10, 10) || r.Contains(30, 25) || r.Contains(5, 15) {
		t.Error("Contains() mismatch at boundaries")
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 || Abs(-5) != 5 || Abs(0) != 0 {
		t.Error("Abs() mismatch")
	}
}
