package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/neon-snake/internal/core"
)

func TestBoardLayout(t *testing.T) {
	l := BoardLayout(80, 24, 20)
	if l.TooSmall {
		t.Fatal("20x20 board should fit 80x24")
	}
	if l.Board.W != 42 || l.Board.H != 22 {
		t.Errorf("Expected 42x22 board box, got %dx%d", l.Board.W, l.Board.H)
	}
	x, y := l.CellOrigin(core.Cell{X: 0, Y: 0})
	if x != l.Board.X+1 || y != l.Board.Y+1 {
		t.Errorf("Cell (0,0) should sit inside the frame, got (%d,%d)", x, y)
	}

	// The TUI keeps the bottom row of a 24-row terminal for key help.
	if BoardLayout(80, 23, 20).TooSmall {
		t.Error("20x20 board should fit the 80x23 area above the help line")
	}
	if !BoardLayout(80, 22, 20).TooSmall {
		t.Error("22 rows cannot hold the HUD and a 20-cell board")
	}

	if !BoardLayout(40, 24, 20).TooSmall {
		t.Error("40 columns cannot hold a 20-cell board")
	}
}

func TestDrawPlaying(t *testing.T) {
	snap := Snapshot{
		State:     StatePlaying,
		GridSize:  20,
		HighScore: 120,
		Food:      core.Cell{X: 10, Y: 10},
		Obstacles: []core.Cell{{X: 2, Y: 2}},
		Players: []PlayerView{{
			ID:    1,
			Color: core.ColorGreen,
			Cells: []core.Cell{{X: 5, Y: 5}, {X: 4, Y: 5}},
			Dir:   core.DirRight,
			Score: 40,
			Alive: true,
		}},
	}
	screen := core.NewScreen(80, 24)
	l := Draw(screen, snap)

	if !strings.Contains(screen.Row(0), "P1 40") || !strings.Contains(screen.Row(0), "Best 120") {
		t.Errorf("HUD missing scores: %q", screen.Row(0))
	}

	x, y := l.CellOrigin(core.Cell{X: 10, Y: 10})
	if g := screen.GetGlyph(x, y); g.Rune != '(' || g.Color != core.ColorFood {
		t.Errorf("Expected food glyph at (%d,%d), got %q %v", x, y, g.Rune, g.Color)
	}
	x, y = l.CellOrigin(core.Cell{X: 4, Y: 5})
	if g := screen.GetGlyph(x, y); g.Rune != '█' || g.Color != core.ColorGreen {
		t.Errorf("Expected body glyph at (%d,%d), got %q %v", x, y, g.Rune, g.Color)
	}
	x, y = l.CellOrigin(core.Cell{X: 2, Y: 2})
	if screen.Get(x, y) != '▓' {
		t.Errorf("Expected obstacle glyph at (%d,%d)", x, y)
	}
}

func TestDrawOverlays(t *testing.T) {
	tests := []struct {
		state State
		text  string
	}{
		{StateMenu, "N E O N"},
		{StateHowToPlay, "How to play"},
		{StatePaused, "Paused"},
		{StateGameOver, "Game Over"},
	}

	for _, tc := range tests {
		t.Run(string(tc.state), func(t *testing.T) {
			screen := core.NewScreen(80, 24)
			Draw(screen, Snapshot{State: tc.state, GridSize: 20})
			if !strings.Contains(screen.String(), tc.text) {
				t.Errorf("Expected %q on screen:\n%s", tc.text, screen.String())
			}
		})
	}
}

func TestDrawTooSmall(t *testing.T) {
	screen := core.NewScreen(30, 10)
	l := Draw(screen, Snapshot{State: StatePlaying, GridSize: 20})
	if !l.TooSmall {
		t.Fatal("Expected TooSmall layout")
	}
	if !strings.Contains(screen.String(), "too small") {
		t.Error("Expected resize hint")
	}
}

func TestDrawMenusOnSmallScreen(t *testing.T) {
	tests := []struct {
		state State
		text  string
	}{
		{StateMenu, "N E O N"},
		{StateGameOver, "Game Over"},
	}

	for _, tc := range tests {
		t.Run(string(tc.state), func(t *testing.T) {
			screen := core.NewScreen(60, 16)
			l := Draw(screen, Snapshot{State: tc.state, GridSize: 20})
			if !l.TooSmall {
				t.Fatal("Expected TooSmall layout")
			}
			out := screen.String()
			if !strings.Contains(out, tc.text) {
				t.Errorf("Expected %q on a small screen:\n%s", tc.text, out)
			}
			if strings.Contains(out, "too small") {
				t.Error("Menus should not be replaced by the resize hint")
			}
		})
	}
}
