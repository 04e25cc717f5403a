package snake

import (
	"errors"
	"testing"
)

func TestStateMachineNotifiesInOrder(t *testing.T) {
	m := NewStateMachine()
	if m.Current() != StateMenu {
		t.Fatalf("Expected initial MENU, got %v", m.Current())
	}

	var got []string
	m.Subscribe(func(s State) { got = append(got, "a:"+string(s)) })
	m.Subscribe(func(s State) { got = append(got, "b:"+string(s)) })

	if err := m.Set(StatePlaying); err != nil {
		t.Fatal(err)
	}
	want := []string{"a:playing", "b:playing"}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("notification %d = %q, expected %q", i, got[i], want[i])
		}
	}
}

func TestStateMachineNotifiesUnchangedState(t *testing.T) {
	m := NewStateMachine()
	calls := 0
	m.Subscribe(func(State) { calls++ })

	_ = m.Set(StateMenu)
	_ = m.Set(StateMenu)

	if calls != 2 {
		t.Errorf("Expected 2 notifications for repeated MENU, got %d", calls)
	}
}

func TestStateMachineUnsubscribe(t *testing.T) {
	m := NewStateMachine()
	calls := 0
	unsubscribe := m.Subscribe(func(State) { calls++ })

	_ = m.Set(StatePlaying)
	unsubscribe()
	_ = m.Set(StateGameOver)

	if calls != 1 {
		t.Errorf("Expected 1 notification before unsubscribe, got %d", calls)
	}
}

func TestStateMachineRejectsUnknown(t *testing.T) {
	m := NewStateMachine()
	calls := 0
	m.Subscribe(func(State) { calls++ })

	err := m.Set(State("credits"))
	if !errors.Is(err, ErrUnknownState) {
		t.Errorf("Expected ErrUnknownState, got %v", err)
	}
	if calls != 0 || m.Current() != StateMenu {
		t.Error("Unknown state should neither notify nor change the state")
	}
}
