package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/games/snake"
	"github.com/vovakirdan/neon-snake/internal/storage"
)

// Options configures one game session.
type Options struct {
	Rules   config.SnakeConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional; nil disables score persistence
	Logger  *log.Logger
	Session string    // SSH session id, empty for local play
	BellOut io.Writer // Where terminal bell cues are written
}

// frameBuffer keeps the last snapshot the engine rendered.
type frameBuffer struct {
	last snake.Snapshot
	ok   bool
}

// Model is the Bubble Tea model hosting one snake engine.
type Model struct {
	engine   *snake.Engine
	sched    *TeaScheduler
	fx       *Sparks
	frame    *frameBuffer
	screen   *core.Screen
	store    *storage.Store
	runtime  core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	board    *ScoreboardModel
	log      *log.Logger
	quitting bool
}

// NewModel creates the session model and its engine. The engine starts in MENU.
func NewModel(opts Options) (Model, error) {
	rt := opts.Runtime
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.FrameHz <= 0 {
		rt.FrameHz = core.DefaultConfig().FrameHz
	}

	rules := opts.Rules
	if rt.Players > 0 {
		rules.Players.Count = rt.Players
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Session != "" {
		logger = logger.With("session", opts.Session)
	}

	highScore := 0
	if opts.Store != nil {
		hs, err := opts.Store.HighScore(rules.Players.Count)
		if err != nil {
			logger.Warn("could not load high score", "error", err)
		}
		highScore = hs
	}

	sched := NewTeaScheduler()
	fx := NewSparks()
	frame := &frameBuffer{}

	engine, err := snake.New(snake.Options{
		Config:    rules,
		Seed:      rt.Seed,
		Scheduler: sched,
		Logger:    logger,
		Renderer: snake.RendererFunc(func(s snake.Snapshot) {
			frame.last = s
			frame.ok = true
		}),
		Effects:   fx,
		Audio:     NewBell(opts.BellOut, rt.BellCues, logger),
		HighScore: highScore,
	})
	if err != nil {
		return Model{}, fmt.Errorf("tui: cannot create engine: %w", err)
	}

	engine.Subscribe(func(s snake.State) {
		if s == snake.StatePlaying {
			frame.ok = false
			fx.Reset()
		}
	})
	engine.Subscribe(saveOnGameOver(engine, opts.Store, rules.Difficulty.Preset, opts.Session, logger))

	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		engine:  engine,
		sched:   sched,
		fx:      fx,
		frame:   frame,
		screen:  core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 1)),
		store:   opts.Store,
		runtime: rt,
		keys:    DefaultKeyMap(rules.Players.Count),
		help:    h,
		log:     logger,
	}, nil
}

// saveOnGameOver persists the final score of every finished episode.
func saveOnGameOver(e *snake.Engine, store *storage.Store, preset, session string, logger *log.Logger) snake.StateListener {
	return func(s snake.State) {
		if s != snake.StateGameOver || store == nil {
			return
		}
		score, record := e.FinalScore()
		if score == 0 {
			return
		}

		snap := e.Snapshot()
		id, err := store.SaveScore(storage.Result{
			EpisodeID: e.Episode(),
			Players:   len(snap.Players),
			Preset:    preset,
			Score:     score,
			Ticks:     snap.Tick,
			Session:   session,
		})
		if err != nil {
			logger.Warn("could not save score", "error", err)
			return
		}
		logger.Info("score saved", "id", id, "score", score, "record", record)
	}
}

// Engine returns the hosted engine.
func (m Model) Engine() *snake.Engine {
	return m.engine
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.runtime.FrameHz)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.WindowSizeMsg:
		m = m.handleResize(msg)

	case FrameMsg:
		m.fx.Advance()
		cmd = frameCmd(m.runtime.FrameHz)

	case timerMsg:
		m.sched.Fire(msg)
	}

	return m, tea.Batch(cmd, m.sched.Drain())
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.board != nil {
		return m.updateScoreboard(msg)
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keys.Resolve(m.engine.State(), msg.String()) {
	case CommandQuit:
		m.quitting = true
		return m, tea.Quit
	case CommandPlay:
		m.request(snake.StatePlaying)
	case CommandHowToPlay:
		m.request(snake.StateHowToPlay)
	case CommandPause:
		m.request(snake.StatePaused)
	case CommandMenu:
		m.request(snake.StateMenu)
	case CommandScores:
		board := NewScoreboardModel(m.store, m.runtime.ScreenW, m.runtime.ScreenH)
		board.embedded = true
		m.board = &board
	case CommandSteer:
		m.engine.HandleKey(msg.String())
	}
	return m, nil
}

func (m Model) updateScoreboard(msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	board, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}
	switch {
	case board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case board.IsGoingBack():
		m.board = nil
		return m, nil
	}
	m.board = &board
	return m, cmd
}

func (m Model) request(s snake.State) {
	if err := m.engine.RequestState(s); err != nil {
		m.log.Error("state change rejected", "state", s, "error", err)
	}
}

// handleResize processes window resize events. The board keeps its size;
// only the layout changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen = core.NewScreen(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width

	if m.board != nil {
		next, _ := m.board.Update(msg)
		if board, ok := next.(ScoreboardModel); ok {
			m.board = &board
		}
	}
	return m
}

// draw renders the current frame into the screen buffer.
func (m Model) draw() {
	snap := m.engine.Snapshot()
	if snap.State == snake.StatePlaying && m.frame.ok {
		snap = m.frame.last
	}
	layout := snake.Draw(m.screen, snap)
	m.fx.Draw(m.screen, layout, snap.GridSize)
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("cannot resolve home for screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("cannot create screenshot directory", "error", err)
		return
	}

	filename := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("cannot write screenshot", "error", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
