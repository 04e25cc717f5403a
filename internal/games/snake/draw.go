package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/neon-snake/internal/core"
)

// CellWidth is the number of terminal columns one grid cell occupies.
// Terminal cells are roughly twice as tall as wide.
const CellWidth = 2

// hudHeight is the single status line above the board.
const hudHeight = 1

// Layout positions the board on a screen.
type Layout struct {
	Board    core.Rect // Border box, inclusive of the frame
	TooSmall bool
}

// BoardLayout centers a board of gridSize cells below the HUD.
func BoardLayout(screenW, screenH, gridSize int) Layout {
	w := gridSize*CellWidth + 2
	h := gridSize + 2
	if w > screenW || h+hudHeight > screenH {
		return Layout{TooSmall: true}
	}
	x := (screenW - w) / 2
	y := hudHeight + (screenH-hudHeight-h)/2
	return Layout{Board: core.NewRect(x, y, w, h)}
}

// CellOrigin returns the screen column and row of grid cell c.
func (l Layout) CellOrigin(c core.Cell) (x, y int) {
	return l.Board.X + 1 + c.X*CellWidth, l.Board.Y + 1 + c.Y
}

// Draw renders a snapshot: HUD, board, entities and the state overlay.
func Draw(dst *core.Screen, snap Snapshot) Layout {
	dst.Clear()
	drawHUD(dst, snap)

	layout := BoardLayout(dst.Width(), dst.Height(), snap.GridSize)
	switch {
	case !layout.TooSmall:
		dst.DrawBox(layout.Board, core.ColorCyan)
		if snap.State != StateMenu && snap.State != StateHowToPlay {
			drawEntities(dst, layout, snap)
		}
	case snap.State == StatePlaying || snap.State == StatePaused:
		drawOverlay(dst, core.ColorRed, "Window too small", "Resize to continue")
		return layout
	}

	switch snap.State {
	case StateMenu:
		drawOverlay(dst, core.ColorCyan, "N E O N   S N A K E", "Enter: play   H: how to play   Q: quit")
	case StateHowToPlay:
		drawHowToPlay(dst, len(snap.Players))
	case StatePaused:
		drawOverlay(dst, core.ColorYellow, "Paused", "Enter: new game   Esc: menu")
	case StateGameOver:
		line := fmt.Sprintf("Score %d   Best %d", snap.MaxScore(), snap.HighScore)
		drawOverlay(dst, core.ColorRed, "Game Over", line, "Enter: play again   Esc: menu")
	}
	return layout
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	x := 1
	dst.DrawText(x, 0, "Snake", core.ColorCyan)
	x += 7
	for _, p := range snap.Players {
		text := fmt.Sprintf("P%d %d", p.ID, p.Score)
		c := p.Color
		if !p.Alive || p.Dying {
			c = core.ColorGray
		}
		dst.DrawText(x, 0, text, c)
		x += len(text) + 3
	}

	right := fmt.Sprintf("Best %d", snap.HighScore)
	if snap.State == StatePlaying || snap.State == StatePaused {
		right = fmt.Sprintf("%v  %s", snap.Speed, right)
	}
	dst.DrawText(dst.Width()-len(right)-1, 0, right, core.ColorGray)
}

func drawEntities(dst *core.Screen, l Layout, snap Snapshot) {
	put := func(c core.Cell, glyph string, color core.Color) {
		x, y := l.CellOrigin(c)
		dst.DrawText(x, y, glyph, color)
	}

	for _, o := range snap.Obstacles {
		put(o, "▓▓", core.ColorGray)
	}
	if snap.FoodMoves {
		put(snap.Food, "<>", core.ColorFood)
	} else {
		put(snap.Food, "()", core.ColorFood)
	}

	for _, p := range snap.Players {
		if !p.Alive {
			continue
		}
		color := p.Color
		if p.Dying {
			color = core.ColorRed
		}
		// Body first so a head drawn over a crossing stays visible.
		for i := len(p.Cells) - 1; i >= 1; i-- {
			put(p.Cells[i], "██", color)
		}
		if len(p.Cells) > 0 && (core.Grid{Size: snap.GridSize}).InBounds(p.Cells[0]) {
			put(p.Cells[0], headGlyph(p.Dir), color)
		}
	}
}

func headGlyph(d core.Direction) string {
	switch d {
	case core.DirUp:
		return "▀▀"
	case core.DirDown:
		return "▄▄"
	case core.DirLeft:
		return "◀█"
	default:
		return "█▶"
	}
}

func drawHowToPlay(dst *core.Screen, players int) {
	players = max(players, 1)
	lines := []string{"Eat food, grow, avoid walls, snakes and obstacles."}
	for i := range min(players, core.MaxPlayers) {
		keys := core.ControlSchemes[i].Keys()
		lines = append(lines, fmt.Sprintf("Player %d: %s", i+1, strings.Join(keys, " ")))
	}
	lines = append(lines, "Enter: play   Esc: menu")
	drawOverlay(dst, core.ColorWhite, "How to play", lines...)
}

// drawOverlay draws a framed, centered message box.
func drawOverlay(dst *core.Screen, color core.Color, title string, lines ...string) {
	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ', core.ColorDefault)
		}
	}
	dst.DrawBox(box, color)
	dst.DrawTextCentered(box.Y+1, title, color)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l, core.ColorWhite)
	}
}
