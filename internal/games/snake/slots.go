package snake

import (
	"fmt"

	"github.com/vovakirdan/neon-snake/internal/core"
)

var slotColors = [core.MaxPlayers]core.Color{
	core.ColorGreen,
	core.ColorBlue,
	core.ColorOrange,
	core.ColorMagenta,
}

func playerName(id int) string {
	return fmt.Sprintf("Player %d", id)
}

func playerColor(id int) core.Color {
	if id < 1 || id > core.MaxPlayers {
		return core.ColorWhite
	}
	return slotColors[id-1]
}

// StartPositions returns the spawn cells for n players. Counts outside 1..4
// fall back to the single-player layout.
func StartPositions(n, gridSize, margin int) []core.Cell {
	far := gridSize - margin - 1
	switch n {
	case 2:
		return []core.Cell{
			{X: margin, Y: gridSize / 3},
			{X: far, Y: 2 * gridSize / 3},
		}
	case 3:
		return []core.Cell{
			{X: margin, Y: margin},
			{X: far, Y: margin},
			{X: gridSize / 2, Y: far},
		}
	case 4:
		return []core.Cell{
			{X: margin, Y: margin},
			{X: far, Y: margin},
			{X: margin, Y: far},
			{X: far, Y: far},
		}
	default:
		return []core.Cell{{X: margin, Y: gridSize / 2}}
	}
}

// startDirection faces spawns in the right half toward the center.
func startDirection(start core.Cell, gridSize int) core.Direction {
	if start.X >= gridSize/2+1 {
		return core.DirLeft
	}
	return core.DirRight
}
