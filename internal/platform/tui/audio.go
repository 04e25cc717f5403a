package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-snake/internal/games/snake"
)

// Bell is the terminal audio collaborator. Terminals offer a single sound,
// so collect and game-over cues ring the bell and moves are only counted.
type Bell struct {
	out     io.Writer
	enabled bool
	log     *log.Logger
	moves   int
}

var _ snake.Audio = (*Bell)(nil)

// NewBell creates a bell writing to out. A disabled bell only logs cues.
func NewBell(out io.Writer, enabled bool, logger *log.Logger) *Bell {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Bell{out: out, enabled: enabled, log: logger}
}

// OnMove counts movement cues.
func (b *Bell) OnMove() {
	b.moves++
}

// OnCollect rings once.
func (b *Bell) OnCollect() {
	b.ring(1)
}

// OnGameOver rings twice.
func (b *Bell) OnGameOver() {
	b.log.Debug("game over cue", "moves", b.moves)
	b.moves = 0
	b.ring(2)
}

func (b *Bell) ring(n int) {
	if !b.enabled || b.out == nil {
		return
	}
	for range n {
		if _, err := io.WriteString(b.out, "\a"); err != nil {
			b.log.Debug("bell write failed", "error", err)
			return
		}
	}
}
