package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/neon-snake/internal/storage"
)

func seededStore(t *testing.T, results ...storage.Result) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	for _, r := range results {
		r.EpisodeID = uuid.NewString()
		if _, err := store.SaveScore(r); err != nil {
			t.Fatal(err)
		}
	}
	return store
}

func TestScoreboardTabsAndSummary(t *testing.T) {
	store := seededStore(t,
		storage.Result{Players: 1, Preset: "normal", Score: 100, Ticks: 40},
		storage.Result{Players: 1, Preset: "hard", Score: 300, Ticks: 90},
		storage.Result{Players: 2, Preset: "normal", Score: 50, Ticks: 20},
	)
	m := NewScoreboardModel(store, 80, 24)

	if len(m.entries) != 2 {
		t.Fatalf("Solo tab: expected 2 entries, got %d", len(m.entries))
	}
	if m.entries[0].Score != 300 {
		t.Errorf("Expected best score first, got %d", m.entries[0].Score)
	}
	if got := m.statsLine(); !strings.Contains(got, "2 games") || !strings.Contains(got, "best 300") || !strings.Contains(got, "avg 200.0") {
		t.Errorf("Unexpected solo summary %q", got)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.tabs[m.active].players != 2 || len(m.entries) != 1 {
		t.Errorf("Expected the 2P tab with 1 entry, got tab %d with %d", m.tabs[m.active].players, len(m.entries))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.(ScoreboardModel).Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.tabs[m.active].players != storage.AllModes {
		t.Fatalf("Prev from Solo should wrap to All, got %d", m.tabs[m.active].players)
	}
	sum, ok := m.summary()
	if !ok || sum.GamesCount != 3 || sum.TotalTicks != 150 || sum.HighScore != 300 {
		t.Errorf("Unexpected merged summary %+v", sum)
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("Title missing from view")
	}
}

func TestScoreboardEmptyAndDisabled(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "disabled") {
		t.Error("Expected disabled message without a store")
	}
	if m.statsLine() != "-" {
		t.Errorf("Expected no summary, got %q", m.statsLine())
	}

	m = NewScoreboardModel(seededStore(t), 80, 24)
	if !strings.Contains(m.View(), "No games finished") {
		t.Error("Expected empty message for a fresh store")
	}
}

func TestScoreboardExit(t *testing.T) {
	tests := []struct {
		name     string
		embedded bool
		key      tea.KeyMsg
		back     bool
		quit     bool
		cmd      bool
	}{
		{"standalone back", false, tea.KeyMsg{Type: tea.KeyEsc}, true, false, true},
		{"embedded back", true, tea.KeyMsg{Type: tea.KeyEsc}, true, false, false},
		{"quit", true, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, false, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewScoreboardModel(nil, 80, 24)
			m.embedded = tc.embedded
			next, cmd := m.Update(tc.key)
			m = next.(ScoreboardModel)

			if m.IsGoingBack() != tc.back || m.IsQuitting() != tc.quit {
				t.Errorf("Expected back=%v quit=%v, got back=%v quit=%v", tc.back, tc.quit, m.IsGoingBack(), m.IsQuitting())
			}
			if (cmd != nil) != tc.cmd {
				t.Errorf("Expected command=%v, got %v", tc.cmd, cmd != nil)
			}
			if m.View() != "" {
				t.Error("Closed scoreboard should render nothing")
			}
		})
	}
}
