package tui

import (
	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/games/snake"
)

// Effect lifetimes in frames.
const (
	trailFrames     = 4
	wallFrames      = 6
	burstFrames     = 10
	collisionFrames = 16
	waveFrames      = 12
	waveCount       = 3
	waveStagger     = 8 // Frames between game-over waves
)

type spark struct {
	cell  core.Cell
	glyph string
	color core.Color
	ttl   int
	delay int  // Frames before the spark shows up
	wall  bool // Recolors the adjacent border instead of the cell
}

// Sparks is the terminal effects collaborator. The engine reports events;
// Sparks owns all animation timing and advances one step per frame.
type Sparks struct {
	trail  map[core.Cell]spark
	sparks []spark
}

var _ snake.Effects = (*Sparks)(nil)

// NewSparks creates an idle effects layer.
func NewSparks() *Sparks {
	return &Sparks{trail: make(map[core.Cell]spark)}
}

// OnTrail refreshes the glow behind a segment.
func (s *Sparks) OnTrail(cell core.Cell, color core.Color) {
	s.trail[cell] = spark{cell: cell, glyph: "░░", color: color, ttl: trailFrames}
}

// OnWallProximity flashes the border next to a segment.
func (s *Sparks) OnWallProximity(cell core.Cell) {
	s.sparks = append(s.sparks, spark{cell: cell, color: core.ColorYellow, ttl: wallFrames, wall: true})
}

// OnFoodCollected bursts particles around the eaten food.
func (s *Sparks) OnFoodCollected(cell core.Cell, color core.Color) {
	for _, d := range core.Directions {
		s.sparks = append(s.sparks, spark{cell: cell.Add(d), glyph: "**", color: color, ttl: burstFrames})
	}
	s.sparks = append(s.sparks, spark{cell: cell, glyph: "++", color: core.ColorFood, ttl: burstFrames / 2})
}

// OnCollision flashes the crash site.
func (s *Sparks) OnCollision(head core.Cell, wall bool) {
	color := core.ColorRed
	if wall {
		color = core.ColorYellow
	}
	s.sparks = append(s.sparks, spark{cell: head, glyph: "XX", color: color, ttl: collisionFrames})
}

// OnGameOver launches staggered rings expanding from head.
func (s *Sparks) OnGameOver(head core.Cell) {
	for w := range waveCount {
		r := w + 1
		for dx := -r; dx <= r; dx++ {
			for dy := -r; dy <= r; dy++ {
				if max(core.Abs(dx), core.Abs(dy)) != r {
					continue
				}
				s.sparks = append(s.sparks, spark{
					cell:  core.Cell{X: head.X + dx, Y: head.Y + dy},
					glyph: "░░",
					color: core.ColorRed,
					ttl:   waveFrames,
					delay: w * waveStagger,
				})
			}
		}
	}
}

// Advance ages every effect by one frame.
func (s *Sparks) Advance() {
	for c, t := range s.trail {
		t.ttl--
		if t.ttl <= 0 {
			delete(s.trail, c)
			continue
		}
		s.trail[c] = t
	}

	live := s.sparks[:0]
	for _, sp := range s.sparks {
		if sp.delay > 0 {
			sp.delay--
		} else {
			sp.ttl--
		}
		if sp.ttl > 0 {
			live = append(live, sp)
		}
	}
	s.sparks = live
}

// Reset drops every running effect.
func (s *Sparks) Reset() {
	clear(s.trail)
	s.sparks = nil
}

// active returns the number of running effects.
func (s *Sparks) active() int {
	return len(s.trail) + len(s.sparks)
}

// Draw overlays effects on a drawn board. Trail glow only fills empty cells.
func (s *Sparks) Draw(dst *core.Screen, l snake.Layout, gridSize int) {
	if l.TooSmall {
		return
	}
	grid := core.Grid{Size: gridSize}
	for _, t := range s.trail {
		x, y := l.CellOrigin(t.cell)
		if grid.InBounds(t.cell) && dst.Get(x, y) == ' ' {
			dst.DrawText(x, y, t.glyph, t.color)
		}
	}
	for _, sp := range s.sparks {
		if sp.delay > 0 || !grid.InBounds(sp.cell) {
			continue
		}
		if sp.wall {
			flashBorder(dst, l, gridSize, sp)
			continue
		}
		x, y := l.CellOrigin(sp.cell)
		dst.DrawText(x, y, sp.glyph, sp.color)
	}
}

func flashBorder(dst *core.Screen, l snake.Layout, gridSize int, sp spark) {
	x, y := l.CellOrigin(sp.cell)
	recolor := func(x, y int) {
		dst.Set(x, y, dst.Get(x, y), sp.color)
	}
	if sp.cell.X == 0 {
		recolor(l.Board.X, y)
	}
	if sp.cell.X == gridSize-1 {
		recolor(l.Board.Right()-1, y)
	}
	if sp.cell.Y == 0 {
		recolor(x, l.Board.Y)
		recolor(x+1, l.Board.Y)
	}
	if sp.cell.Y == gridSize-1 {
		recolor(x, l.Board.Bottom()-1)
		recolor(x+1, l.Board.Bottom()-1)
	}
}
