package core

import "strings"

// MaxPlayers is the number of local control schemes.
const MaxPlayers = 4

// ControlScheme maps four key names to directions for one player slot.
// Key names follow Bubble Tea's KeyMsg.String() form.
type ControlScheme struct {
	Up, Down, Left, Right string
}

// Direction returns the direction bound to key, if any. Matching ignores case.
func (c ControlScheme) Direction(key string) (Direction, bool) {
	switch strings.ToLower(key) {
	case c.Up:
		return DirUp, true
	case c.Down:
		return DirDown, true
	case c.Left:
		return DirLeft, true
	case c.Right:
		return DirRight, true
	}
	return Direction{}, false
}

// Keys returns the bound keys in up, down, left, right order.
func (c ControlScheme) Keys() []string {
	return []string{c.Up, c.Down, c.Left, c.Right}
}

// ControlSchemes is the static table of predefined per-slot controls:
// arrows, WASD, IJKL and the numeric keypad.
var ControlSchemes = [MaxPlayers]ControlScheme{
	{Up: "up", Down: "down", Left: "left", Right: "right"},
	{Up: "w", Down: "s", Left: "a", Right: "d"},
	{Up: "i", Down: "k", Left: "j", Right: "l"},
	{Up: "8", Down: "5", Left: "4", Right: "6"},
}

// LookupKey resolves a key against the first n control schemes.
// It returns the zero-based player slot and the direction.
func LookupKey(key string, n int) (slot int, dir Direction, ok bool) {
	n = min(n, MaxPlayers)
	for i := range n {
		if d, found := ControlSchemes[i].Direction(key); found {
			return i, d, true
		}
	}
	return 0, Direction{}, false
}
