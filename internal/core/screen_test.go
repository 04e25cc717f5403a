package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(42, 23)

	if s.Width() != 42 {
		t.Errorf("Width() = %d, expected 42", s.Width())
	}
	if s.Height() != 23 {
		t.Errorf("Height() = %d, expected 23", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'O', ColorGreen)
	if g := s.GetGlyph(5, 5); g.Rune != 'O' || g.Color != ColorGreen {
		t.Errorf("GetGlyph(5, 5) = %+v, expected green 'O'", g)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', ColorRed)
	s.Set(100, 0, 'A', ColorRed)
	s.Set(0, -1, 'A', ColorRed)
	s.Set(0, 100, 'A', ColorRed)

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawText(0, 0, "XXXX", ColorRed)
	s.Clear()

	if got := s.GetGlyph(1, 0); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("Clear() left %+v", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(8, 0, "abc", ColorDefault)
	if s.Row(0) != "        ab" {
		t.Errorf("Row(0) = %q, expected clipping at the right edge", s.Row(0))
	}

	s.DrawTextCentered(1, "─ok─", ColorCyan)
	if got := s.Row(1); got != "   ─ok─   " {
		t.Errorf("Row(1) = %q, expected multi-byte text centered by rune count", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4), ColorCyan)

	expected := []string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}
	if got := s.String(); got != strings.Join(expected, "\n") {
		t.Errorf("DrawBox produced:\n%s", got)
	}
	if s.GetGlyph(0, 0).Color != ColorCyan {
		t.Error("box corners should carry the box color")
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(3, 1)
	if s.Row(5) != "   " {
		t.Errorf("Row(5) = %q, expected blank row", s.Row(5))
	}
}
