package core

import (
	"sort"
	"time"
)

// Timer is a cancellable scheduled task.
type Timer interface {
	// Stop cancels the task. Stopping twice is harmless.
	Stop()
}

// Scheduler runs callbacks later on the simulation's single logical thread.
// Implementations must never run two callbacks concurrently, and a callback
// whose Timer was stopped must not run afterwards.
type Scheduler interface {
	// After runs fn once after d.
	After(d time.Duration, fn func()) Timer
	// Every runs fn repeatedly with period d, first after d.
	Every(d time.Duration, fn func()) Timer
}

// ManualScheduler is a virtual clock that only moves when Advance is called.
// Tests use it to drive ticks deterministically.
type ManualScheduler struct {
	now   time.Duration
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	due     time.Duration
	period  time.Duration
	seq     uint64
	fn      func()
	stopped bool
}

func (t *manualTask) Stop() {
	t.stopped = true
}

// NewManualScheduler creates a virtual clock at time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Now returns the virtual time elapsed since creation.
func (m *ManualScheduler) Now() time.Duration {
	return m.now
}

// After implements Scheduler.
func (m *ManualScheduler) After(d time.Duration, fn func()) Timer {
	return m.schedule(d, 0, fn)
}

// Every implements Scheduler. Non-positive periods panic.
func (m *ManualScheduler) Every(d time.Duration, fn func()) Timer {
	if d <= 0 {
		panic("core: non-positive period for Every")
	}
	return m.schedule(d, d, fn)
}

func (m *ManualScheduler) schedule(d, period time.Duration, fn func()) *manualTask {
	m.seq++
	t := &manualTask{due: m.now + max(d, 0), period: period, seq: m.seq, fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

// Advance moves the clock forward by d, firing due tasks in (due, creation)
// order. Tasks scheduled by callbacks fire within the same call if they fall
// inside the window.
func (m *ManualScheduler) Advance(d time.Duration) {
	target := m.now + d
	for {
		t := m.next(target)
		if t == nil {
			break
		}
		m.now = t.due
		if t.period > 0 {
			t.due += t.period
		} else {
			t.stopped = true
		}
		t.fn()
	}
	m.now = target
}

// Pending returns the number of live tasks.
func (m *ManualScheduler) Pending() int {
	m.compact()
	return len(m.tasks)
}

func (m *ManualScheduler) next(target time.Duration) *manualTask {
	m.compact()
	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].due != m.tasks[j].due {
			return m.tasks[i].due < m.tasks[j].due
		}
		return m.tasks[i].seq < m.tasks[j].seq
	})
	if len(m.tasks) == 0 || m.tasks[0].due > target {
		return nil
	}
	return m.tasks[0]
}

func (m *ManualScheduler) compact() {
	live := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.stopped {
			live = append(live, t)
		}
	}
	m.tasks = live
}
