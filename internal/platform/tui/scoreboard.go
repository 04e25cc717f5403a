package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/storage"
)

// historyLimit caps the rows loaded for one tab.
const historyLimit = 50

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tabStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle  = tabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	statsStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	frameStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// scoreTab is one player-count view of the score history.
type scoreTab struct {
	players int
	title   string
}

func modeTitle(players int) string {
	switch players {
	case storage.AllModes:
		return "All"
	case 1:
		return "Solo"
	default:
		return fmt.Sprintf("%dP", players)
	}
}

// scoreTabs lists each player count, then every mode together.
func scoreTabs() []scoreTab {
	tabs := make([]scoreTab, 0, core.MaxPlayers+1)
	for n := 1; n <= core.MaxPlayers; n++ {
		tabs = append(tabs, scoreTab{players: n, title: modeTitle(n)})
	}
	return append(tabs, scoreTab{players: storage.AllModes, title: modeTitle(storage.AllModes)})
}

type scoreboardKeys struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.Prev, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next mode")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev mode")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// boardExit records how the scoreboard was left.
type boardExit int

const (
	boardOpen boardExit = iota
	boardBack
	boardQuit
)

// ScoreboardModel browses finished episodes per player count, with a
// summary line built from the per-mode statistics.
type ScoreboardModel struct {
	tabs     []scoreTab
	active   int
	store    *storage.Store
	entries  []storage.ScoreEntry
	stats    []storage.Stats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     scoreboardKeys
	width    int
	height   int
	exit     boardExit
	embedded bool // Hosted inside the game model; back returns instead of quitting
}

// NewScoreboardModel creates a scoreboard on the Solo tab.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		tabs:   scoreTabs(),
		store:  store,
		help:   help.New(),
		keys:   newScoreboardKeys(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = newScoreTable(height)
	m.reload()
	return m
}

func newScoreTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 7},
			{Title: "Mode", Width: 5},
			{Title: "Level", Width: 7},
			{Title: "Ticks", Width: 7},
			{Title: "Played", Width: 12},
		}),
		table.WithFocused(true),
		// Title, tabs, stats, frame and help take the remaining rows.
		table.WithHeight(max(height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)
	return t
}

// reload fetches the active tab's history and the mode statistics.
func (m *ScoreboardModel) reload() {
	m.entries, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		players := m.tabs[m.active].players
		if m.entries, m.loadErr = m.store.TopScores(players, historyLimit); m.loadErr == nil {
			m.stats, m.loadErr = m.store.ModeStats()
		}
	}

	rows := make([]table.Row, 0, len(m.entries))
	for i, e := range m.entries {
		rows = append(rows, table.Row{
			fmt.Sprint(i + 1),
			fmt.Sprint(e.Score),
			modeTitle(e.Players),
			e.Preset,
			fmt.Sprint(e.Ticks),
			e.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// summary folds the statistics of the active tab into one value.
// The All tab merges every mode, weighting averages by game count.
func (m ScoreboardModel) summary() (storage.Stats, bool) {
	players := m.tabs[m.active].players
	var sum storage.Stats
	var total float64
	for _, st := range m.stats {
		if players != storage.AllModes && st.Players != players {
			continue
		}
		sum.GamesCount += st.GamesCount
		sum.HighScore = max(sum.HighScore, st.HighScore)
		sum.TotalTicks += st.TotalTicks
		total += st.AvgScore * float64(st.GamesCount)
		if st.LastPlayed.After(sum.LastPlayed) {
			sum.LastPlayed = st.LastPlayed
		}
	}
	if sum.GamesCount == 0 {
		return sum, false
	}
	sum.Players = players
	sum.AvgScore = total / float64(sum.GamesCount)
	return sum, true
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation between modes and scrolling.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.exit = boardQuit
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.exit = boardBack
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.active = (m.active + 1) % len(m.tabs)
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.active = (m.active + len(m.tabs) - 1) % len(m.tabs)
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(msg.Height-10, 3))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders title, mode tabs, the stats line and the history table.
func (m ScoreboardModel) View() string {
	if m.exit != boardOpen {
		return ""
	}

	tabs := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.active {
			tabs[i] = activeTabStyle.Render(t.title)
		} else {
			tabs[i] = tabStyle.Render(t.title)
		}
	}

	var body string
	switch {
	case m.loadErr != nil:
		body = mutedStyle.Render("Scores unavailable: " + m.loadErr.Error())
	case m.store == nil:
		body = mutedStyle.Render("Score history is disabled.")
	case len(m.entries) == 0:
		body = mutedStyle.Render("No games finished in this mode yet.")
	default:
		body = m.table.View()
	}

	center := func(s string) string {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
	}
	parts := []string{
		center(boardTitleStyle.Render("HIGH SCORES")),
		center(lipgloss.JoinHorizontal(lipgloss.Top, tabs...)),
		center(statsStyle.Render(m.statsLine())),
		center(frameStyle.Render(body)),
		helpStyle.Render(m.help.View(m.keys)),
	}
	return strings.Join(parts, "\n")
}

func (m ScoreboardModel) statsLine() string {
	st, ok := m.summary()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%d games   best %d   avg %.1f   %d ticks   last %s",
		st.GamesCount, st.HighScore, st.AvgScore, st.TotalTicks, age(st.LastPlayed))
}

// age formats t relative to now, in whole minutes, hours or days.
func age(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := time.Since(t)
	switch {
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// IsGoingBack reports whether the scoreboard was closed with back.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.exit == boardBack
}

// IsQuitting reports whether the user asked to quit the program.
func (m ScoreboardModel) IsQuitting() bool {
	return m.exit == boardQuit
}

// RunScoreboard runs the scoreboard as its own program.
// It reports whether the user went back rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
