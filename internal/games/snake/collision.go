package snake

import "github.com/vovakirdan/neon-snake/internal/core"

// HitsWall reports whether head left the board.
func HitsWall(grid core.Grid, head core.Cell) bool {
	return !grid.InBounds(head)
}

// HitsSelf reports whether the head overlaps any non-head segment.
func HitsSelf(body []core.Cell) bool {
	if len(body) < 2 {
		return false
	}
	head := body[0]
	for _, seg := range body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// HitsPlayers reports whether head overlaps any segment, heads included,
// of the given players.
func HitsPlayers(head core.Cell, others []*Player) bool {
	for _, o := range others {
		for _, seg := range o.snake {
			if seg == head {
				return true
			}
		}
	}
	return false
}

// HitsObstacle reports whether head overlaps an obstacle.
func HitsObstacle(head core.Cell, obstacles []core.Cell) bool {
	for _, o := range obstacles {
		if o == head {
			return true
		}
	}
	return false
}

// CheckCollisions evaluates wall, self, other players and obstacles against
// the post-move board. Food is never a collision.
func CheckCollisions(grid core.Grid, p *Player, others []*Player, obstacles []core.Cell) bool {
	head := p.Head()
	return HitsWall(grid, head) ||
		HitsSelf(p.snake) ||
		HitsPlayers(head, others) ||
		HitsObstacle(head, obstacles)
}
