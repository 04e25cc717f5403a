package core

// Color is a color key attached to entities and screen glyphs.
// The platform maps keys to terminal colors; the engine never sees ANSI codes.
type Color uint8

// Palette used by the game. Player slots take Green, Blue, Orange and Magenta.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorBlue
	ColorOrange
	ColorMagenta
	ColorRed
	ColorYellow
	ColorCyan
	ColorWhite
	ColorGray
	ColorFood
)

var colorNames = map[Color]string{
	ColorDefault: "default",
	ColorGreen:   "green",
	ColorBlue:    "blue",
	ColorOrange:  "orange",
	ColorMagenta: "magenta",
	ColorRed:     "red",
	ColorYellow:  "yellow",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
	ColorGray:    "gray",
	ColorFood:    "food",
}

// String returns the color key name.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}
