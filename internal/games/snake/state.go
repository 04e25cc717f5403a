package snake

import (
	"errors"
	"fmt"
)

// ErrUnknownState is returned when a host requests an undeclared state.
var ErrUnknownState = errors.New("snake: unknown game state")

// State is the top-level mode of the game.
type State string

const (
	StateMenu      State = "menu"
	StateHowToPlay State = "how_to_play"
	StatePlaying   State = "playing"
	StatePaused    State = "paused"
	StateGameOver  State = "game_over"
)

// Valid reports whether s is a declared state.
func (s State) Valid() bool {
	switch s {
	case StateMenu, StateHowToPlay, StatePlaying, StatePaused, StateGameOver:
		return true
	}
	return false
}

// StateListener is notified synchronously after every transition.
type StateListener func(State)

// StateMachine holds the current state and an ordered subscriber list.
// Every Set notifies all subscribers, even when the state does not change.
// Subscribers cannot veto a transition.
type StateMachine struct {
	current   State
	listeners []*StateListener
}

// NewStateMachine starts in MENU.
func NewStateMachine() *StateMachine {
	return &StateMachine{current: StateMenu}
}

// Current returns the current state.
func (m *StateMachine) Current() State {
	return m.current
}

// Subscribe appends a listener and returns a function that removes it.
func (m *StateMachine) Subscribe(fn StateListener) (unsubscribe func()) {
	ref := &fn
	m.listeners = append(m.listeners, ref)
	return func() {
		for i, l := range m.listeners {
			if l == ref {
				m.listeners = append(m.listeners[:i:i], m.listeners[i+1:]...)
				return
			}
		}
	}
}

// Set switches to s and broadcasts it to the listeners registered at call time.
func (m *StateMachine) Set(s State) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownState, s)
	}
	m.current = s
	listeners := append([]*StateListener(nil), m.listeners...)
	for _, l := range listeners {
		(*l)(s)
	}
	return nil
}
