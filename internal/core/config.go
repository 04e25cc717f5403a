package core

// RuntimeConfig contains host settings passed to the engine and platform.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	FrameHz  int   // Redraw rate of the effects loop, independent of ticks
	Seed     int64 // RNG seed for deterministic gameplay
	Players  int   // Number of local players (1-4)
	BellCues bool  // Ring the terminal bell on audio cues
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		FrameHz: 30,
		Seed:    0, // 0 means use current time in platform layer
		Players: 1,
	}
}
