package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/games/snake"
)

// KeyMap defines the host key bindings. Movement keys come from the
// per-slot control schemes and are routed to the engine only while playing.
type KeyMap struct {
	Play   key.Binding
	Help   key.Binding
	Pause  key.Binding
	Menu   key.Binding
	Scores key.Binding
	Quit   key.Binding
	Move   []key.Binding // One per active player slot
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Help, k.Pause, k.Menu, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Move,
		{k.Play, k.Pause, k.Menu},
		{k.Help, k.Scores, k.Quit},
	}
}

// DefaultKeyMap returns bindings for n local players.
func DefaultKeyMap(players int) KeyMap {
	players = min(max(players, 1), core.MaxPlayers)

	move := make([]key.Binding, 0, players)
	for i := range players {
		keys := core.ControlSchemes[i].Keys()
		move = append(move, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), fmt.Sprintf("player %d", i+1)),
		))
	}

	return KeyMap{
		Play: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h", "how to play"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause"),
		),
		Menu: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Move: move,
	}
}

// Command is a host action derived from a key in a given state.
type Command int

const (
	CommandNone Command = iota
	CommandPlay
	CommandHowToPlay
	CommandPause
	CommandMenu
	CommandScores
	CommandQuit
	CommandSteer
)

// Resolve maps a key to a host command for the current engine state.
// Movement keys resolve to CommandSteer only while playing; "b", "h", "q"
// and space then belong to nobody, so players 2 to 4 keep their letters.
func (k KeyMap) Resolve(state snake.State, msg string) Command {
	if msg == "ctrl+c" {
		return CommandQuit
	}

	if state == snake.StatePlaying {
		for _, b := range k.Move {
			if matches(b, msg) {
				return CommandSteer
			}
		}
		switch {
		case msg == "esc":
			return CommandMenu
		case msg == "p":
			return CommandPause
		}
		return CommandNone
	}

	switch {
	case matches(k.Quit, msg):
		return CommandQuit
	case matches(k.Play, msg):
		return CommandPlay
	case matches(k.Menu, msg) && state != snake.StateMenu:
		return CommandMenu
	case matches(k.Help, msg) && state == snake.StateMenu:
		return CommandHowToPlay
	case matches(k.Scores, msg) && state == snake.StateMenu:
		return CommandScores
	}
	return CommandNone
}

func matches(b key.Binding, msg string) bool {
	for _, k := range b.Keys() {
		if strings.EqualFold(k, msg) {
			return true
		}
	}
	return false
}
