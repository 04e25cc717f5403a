// Package tui provides the Bubble Tea host for the snake engine.
// It handles the terminal UI loop, key routing, effects and score saving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to redraw and advance effect animations.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the specified rate.
func frameCmd(frameHz int) tea.Cmd {
	interval := time.Second / time.Duration(max(frameHz, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
