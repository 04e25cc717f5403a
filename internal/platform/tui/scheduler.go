package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-snake/internal/core"
)

// timerMsg delivers an expired engine timer back into Update.
type timerMsg struct {
	task *teaTask
}

type teaTask struct {
	period  time.Duration
	fn      func()
	stopped bool
}

func (t *teaTask) Stop() {
	t.stopped = true
}

// TeaScheduler runs engine timers as tea.Tick commands, so every callback
// executes inside Update on the program's goroutine. Scheduling only queues
// commands; the model collects them with Drain after each message.
type TeaScheduler struct {
	pending []tea.Cmd
}

// NewTeaScheduler creates an empty scheduler.
func NewTeaScheduler() *TeaScheduler {
	return &TeaScheduler{}
}

// After implements core.Scheduler.
func (s *TeaScheduler) After(d time.Duration, fn func()) core.Timer {
	t := &teaTask{fn: fn}
	s.arm(t, d)
	return t
}

// Every implements core.Scheduler.
func (s *TeaScheduler) Every(d time.Duration, fn func()) core.Timer {
	t := &teaTask{period: d, fn: fn}
	s.arm(t, d)
	return t
}

func (s *TeaScheduler) arm(t *teaTask, d time.Duration) {
	s.pending = append(s.pending, tea.Tick(max(d, time.Millisecond), func(time.Time) tea.Msg {
		return timerMsg{task: t}
	}))
}

// Fire runs an expired task unless it was stopped, and re-arms periodic ones.
func (s *TeaScheduler) Fire(msg timerMsg) {
	t := msg.task
	if t.stopped {
		return
	}
	if t.period > 0 {
		s.arm(t, t.period)
	} else {
		t.stopped = true
	}
	t.fn()
}

// Drain returns the commands queued since the last call.
func (s *TeaScheduler) Drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
