// Package core provides fundamental types and utilities for the snake engine.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"fmt"
	"math/rand"
)

// Cell is an integer grid coordinate. Equality is value equality.
type Cell struct {
	X, Y int
}

// Add returns the cell one step away from c in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Chebyshev returns the chessboard distance between two cells.
func (c Cell) Chebyshev(other Cell) int {
	return max(Abs(c.X-other.X), Abs(c.Y-other.Y))
}

// String returns "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit delta on the grid.
type Direction struct {
	DX, DY int
}

// The four movement directions. Y grows downward.
var (
	DirUp    = Direction{DX: 0, DY: -1}
	DirDown  = Direction{DX: 0, DY: 1}
	DirLeft  = Direction{DX: -1, DY: 0}
	DirRight = Direction{DX: 1, DY: 0}
)

// Directions lists the four valid directions.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Opposite returns the componentwise negation of d.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsOpposite reports whether other is the exact inverse of d.
func (d Direction) IsOpposite(other Direction) bool {
	return d.DX+other.DX == 0 && d.DY+other.DY == 0
}

// Valid reports whether d is one of the four unit directions.
func (d Direction) Valid() bool {
	for _, v := range Directions {
		if v == d {
			return true
		}
	}
	return false
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a name ("up", "down", "left", "right") to a Direction.
func ParseDirection(name string) (Direction, bool) {
	for _, d := range Directions {
		if d.String() == name {
			return d, true
		}
	}
	return Direction{}, false
}

// Grid is a square board of Size x Size cells.
type Grid struct {
	Size int
}

// InBounds reports whether c lies in [0, Size) on both axes.
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Size && c.Y >= 0 && c.Y < g.Size
}

// OnEdge reports whether c is an in-bounds cell touching the border.
func (g Grid) OnEdge(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	return c.X == 0 || c.Y == 0 || c.X == g.Size-1 || c.Y == g.Size-1
}

// Area returns the number of cells on the board.
func (g Grid) Area() int {
	return g.Size * g.Size
}

// RandomCell samples a cell uniformly.
func (g Grid) RandomCell(rng *rand.Rand) Cell {
	return Cell{X: rng.Intn(g.Size), Y: rng.Intn(g.Size)}
}

// CountFree returns how many in-bounds cells are not rejected by blocked.
func (g Grid) CountFree(blocked func(Cell) bool) int {
	free := 0
	for y := range g.Size {
		for x := range g.Size {
			if !blocked(Cell{X: x, Y: y}) {
				free++
			}
		}
	}
	return free
}

// Occupancy is a set of cells covered by entities.
type Occupancy map[Cell]struct{}

// NewOccupancy builds an occupancy set from any number of cell lists.
func NewOccupancy(sets ...[]Cell) Occupancy {
	o := make(Occupancy)
	for _, set := range sets {
		o.Add(set...)
	}
	return o
}

// Add marks cells as occupied.
func (o Occupancy) Add(cells ...Cell) {
	for _, c := range cells {
		o[c] = struct{}{}
	}
}

// Has reports whether c is occupied.
func (o Occupancy) Has(c Cell) bool {
	_, ok := o[c]
	return ok
}

// Rect represents an axis-aligned box on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
