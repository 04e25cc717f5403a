package snake

import "github.com/vovakirdan/neon-snake/internal/core"

// FoodReward is the default score added by each Grow call.
const FoodReward = 10

// Player is one locally controlled snake.
type Player struct {
	ID    int // Stable slot id, 1-based
	Name  string
	Color core.Color

	snake     []core.Cell // Head at index 0
	direction core.Direction
	prevHead  core.Cell
	score     int
	reward    int
	alive     bool
	growing   bool // If true, don't remove tail on next move
	dying     bool // Fatal collision seen, waiting out the grace delay
}

// NewPlayer creates a living one-segment snake at start.
func NewPlayer(id int, start core.Cell, dir core.Direction) *Player {
	return &Player{
		ID:        id,
		Name:      playerName(id),
		Color:     playerColor(id),
		snake:     []core.Cell{start},
		direction: dir,
		prevHead:  start,
		reward:    FoodReward,
		alive:     true,
	}
}

// Move prepends head+direction and drops the tail unless growth is pending.
// It performs no collision checks.
func (p *Player) Move() {
	if len(p.snake) == 0 {
		return
	}
	p.prevHead = p.snake[0]
	newHead := p.snake[0].Add(p.direction)
	p.snake = append([]core.Cell{newHead}, p.snake...)

	if p.growing {
		p.growing = false
	} else {
		p.snake = p.snake[:len(p.snake)-1]
	}
}

// Grow schedules one segment of growth for the next Move and adds the reward.
func (p *Player) Grow() {
	p.growing = true
	p.score += p.reward
}

// SetDirection replaces the current direction unless dir is its exact inverse
// or not a unit direction. It reports whether the direction was accepted.
func (p *Player) SetDirection(dir core.Direction) bool {
	if !dir.Valid() || p.direction.IsOpposite(dir) {
		return false
	}
	p.direction = dir
	return true
}

// Head returns the first segment.
func (p *Player) Head() core.Cell {
	return p.snake[0]
}

// PrevHead returns the head position before the last Move.
func (p *Player) PrevHead() core.Cell {
	return p.prevHead
}

// Body returns a copy of all segments, head first.
func (p *Player) Body() []core.Cell {
	return append([]core.Cell(nil), p.snake...)
}

// Len returns the number of segments.
func (p *Player) Len() int {
	return len(p.snake)
}

// Direction returns the current heading.
func (p *Player) Direction() core.Direction {
	return p.direction
}

// Score returns the accumulated score.
func (p *Player) Score() int {
	return p.score
}

// Alive reports whether the player still takes part in the episode.
func (p *Player) Alive() bool {
	return p.alive
}

// Dying reports whether a fatal collision is waiting out the grace delay.
func (p *Player) Dying() bool {
	return p.dying
}

// active reports whether the player moves on the next tick.
func (p *Player) active() bool {
	return p.alive && !p.dying
}
