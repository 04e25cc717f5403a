// Package snake implements the authoritative grid snake simulation: entity
// state, collisions, food and obstacle placement, difficulty progression and
// the menu/play/game-over state machine. Rendering, effects and audio are
// collaborators reached through interfaces.
package snake

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/core"
)

// Options configures an Engine. Nil collaborators are replaced by no-ops.
type Options struct {
	Config    config.SnakeConfig
	Seed      int64
	Scheduler core.Scheduler
	Logger    *log.Logger
	Renderer  Renderer
	Effects   Effects
	Audio     Audio
	HighScore int // Persisted best score loaded by the host
}

// Engine owns one game session: the state machine, the timers and every
// entity. It is not safe for concurrent use; all calls, including timer
// callbacks, must come from the scheduler's single thread.
type Engine struct {
	cfg        config.SnakeConfig
	grid       core.Grid
	rng        *rand.Rand
	sched      core.Scheduler
	log        *log.Logger
	renderer   Renderer
	effects    Effects
	audio      Audio
	states     *StateMachine
	difficulty *Difficulty

	players    []*Player
	food       Food
	obstacles  *Obstacles
	speed      time.Duration
	foodMoving bool

	tickTimer   core.Timer
	foodTimer   core.Timer
	deathTimers []core.Timer

	// generation tags deferred callbacks; it changes whenever an episode
	// starts or stops so stale callbacks become no-ops.
	generation uint64
	episode    string
	tick       uint64

	highScore  int
	finalScore int
	newRecord  bool
}

// New creates an engine in MENU.
func New(opts Options) (*Engine, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	if opts.Scheduler == nil {
		return nil, errors.New("snake: scheduler is required")
	}

	e := &Engine{
		cfg:        opts.Config,
		grid:       core.Grid{Size: opts.Config.Grid.Size},
		rng:        rand.New(rand.NewSource(opts.Seed)),
		sched:      opts.Scheduler,
		log:        opts.Logger,
		renderer:   opts.Renderer,
		effects:    opts.Effects,
		audio:      opts.Audio,
		states:     NewStateMachine(),
		difficulty: NewDifficulty(opts.Config),
		obstacles:  NewObstacles(opts.Config.Obstacles.Max, opts.Config.Obstacles.SafeDistance),
		speed:      opts.Config.Speed.Initial,
		highScore:  opts.HighScore,
	}
	if e.log == nil {
		e.log = log.New(io.Discard)
	}
	if e.renderer == nil {
		e.renderer = RendererFunc(func(Snapshot) {})
	}
	if e.effects == nil {
		e.effects = NopEffects{}
	}
	if e.audio == nil {
		e.audio = NopAudio{}
	}

	e.states.Subscribe(e.handleStateChange)
	return e, nil
}

// State returns the current game state.
func (e *Engine) State() State {
	return e.states.Current()
}

// Subscribe registers a state-change listener after the engine's own.
func (e *Engine) Subscribe(fn StateListener) (unsubscribe func()) {
	return e.states.Subscribe(fn)
}

// RequestState performs a host-driven transition. Entering PLAYING starts a
// fresh episode; entering MENU or HOW_TO_PLAY stops it.
func (e *Engine) RequestState(s State) error {
	return e.states.Set(s)
}

// SetDirection steers the player in slot (zero-based). Input outside PLAYING,
// unknown slots and reversals are ignored. The latest accepted direction wins.
func (e *Engine) SetDirection(slot int, dir core.Direction) bool {
	if e.states.Current() != StatePlaying || slot < 0 || slot >= len(e.players) {
		return false
	}
	return e.players[slot].SetDirection(dir)
}

// HandleKey routes a key through the control-scheme table.
func (e *Engine) HandleKey(key string) bool {
	slot, dir, ok := core.LookupKey(key, len(e.players))
	if !ok {
		return false
	}
	return e.SetDirection(slot, dir)
}

// Speed returns the current tick interval.
func (e *Engine) Speed() time.Duration {
	return e.speed
}

// PlayerCount returns the number of players of the current configuration.
func (e *Engine) PlayerCount() int {
	return e.cfg.Players.Count
}

// HighScore returns the best score known to the engine.
func (e *Engine) HighScore() int {
	return e.highScore
}

// FinalScore returns the best score of the last finished episode and whether
// it set a new record.
func (e *Engine) FinalScore() (score int, record bool) {
	return e.finalScore, e.newRecord
}

// Episode returns the id of the current or last episode.
func (e *Engine) Episode() string {
	return e.episode
}

func (e *Engine) handleStateChange(s State) {
	e.log.Debug("state changed", "state", s)

	switch s {
	case StateMenu, StateHowToPlay:
		e.stopGame()
	case StateGameOver:
		// The final board stays visible until the next episode or the menu.
		e.stopTimers()
	case StatePlaying:
		e.startGame()
	case StatePaused:
		// Ticks keep firing but step ignores them until a new episode.
	}
}

// startGame discards the previous episode and builds a new one.
func (e *Engine) startGame() {
	e.stopGame()
	e.generation++
	e.episode = uuid.NewString()
	e.tick = 0
	e.finalScore = 0
	e.newRecord = false

	positions := StartPositions(e.cfg.Players.Count, e.grid.Size, e.cfg.Grid.StartMargin)
	e.players = make([]*Player, 0, len(positions))
	for i, pos := range positions {
		p := NewPlayer(i+1, pos, startDirection(pos, e.grid.Size))
		p.reward = e.cfg.Food.Reward
		e.players = append(e.players, p)
	}

	e.speed = e.difficulty.InitialSpeed()
	if err := e.repositionFood(); err != nil {
		e.log.Error("cannot place food", "error", err)
	}
	e.startTicking()

	e.log.Info("episode started",
		"episode", e.episode,
		"players", len(e.players),
		"speed", e.speed,
		"progression", e.difficulty.IsEnabled())
}

// stopGame cancels every timer and clears obstacles. It is idempotent.
func (e *Engine) stopGame() {
	e.stopTimers()
	e.obstacles.Clear()
}

// stopTimers cancels the tick, food and death timers and invalidates pending
// callbacks.
func (e *Engine) stopTimers() {
	e.generation++
	if e.tickTimer != nil {
		e.tickTimer.Stop()
		e.tickTimer = nil
	}
	if e.foodTimer != nil {
		e.foodTimer.Stop()
		e.foodTimer = nil
	}
	for _, t := range e.deathTimers {
		t.Stop()
	}
	e.deathTimers = nil
	e.foodMoving = false
}

// startTicking replaces the tick timer with one at the current speed.
func (e *Engine) startTicking() {
	if e.tickTimer != nil {
		e.tickTimer.Stop()
	}
	e.tickTimer = e.sched.Every(e.speed, e.step)
}

type collision struct {
	player *Player
	wall   bool
}

// step runs one discrete tick: move every active player, resolve food in id
// order, then classify collisions against the settled post-move board so
// simultaneous collisions do not depend on player order.
func (e *Engine) step() {
	if e.states.Current() != StatePlaying {
		return
	}
	e.tick++

	var movers []*Player
	for _, p := range e.players {
		if p.active() {
			movers = append(movers, p)
		}
	}

	for _, p := range movers {
		p.Move()
		e.audio.OnMove()
		for _, seg := range p.snake {
			e.effects.OnTrail(seg, p.Color)
			if e.grid.OnEdge(seg) {
				e.effects.OnWallProximity(seg)
			}
		}
	}

	for _, p := range movers {
		if p.Head() != e.food.Position() {
			continue
		}
		if err := e.collect(p); err != nil {
			e.log.Error("board is full", "episode", e.episode, "error", err)
			e.gameOver()
			return
		}
	}

	var hits []collision
	for _, p := range movers {
		if CheckCollisions(e.grid, p, e.othersOf(p), e.obstacles.cells) {
			hits = append(hits, collision{player: p, wall: HitsWall(e.grid, p.Head())})
		}
	}
	for _, h := range hits {
		e.effects.OnCollision(h.player.Head(), h.wall)
		e.scheduleDeath(h.player)
	}

	e.renderer.Render(e.Snapshot())
}

// othersOf returns every other player whose alive flag is still set.
// Dying players keep blocking; dead ones do not.
func (e *Engine) othersOf(p *Player) []*Player {
	others := make([]*Player, 0, len(e.players)-1)
	for _, o := range e.players {
		if o != p && o.alive {
			others = append(others, o)
		}
	}
	return others
}

func (e *Engine) collect(p *Player) error {
	p.Grow()
	if err := e.repositionFood(); err != nil {
		return err
	}
	e.increaseSpeed()

	e.audio.OnCollect()
	e.effects.OnFoodCollected(p.Head(), p.Color)
	e.log.Debug("food collected", "player", p.ID, "score", p.Score())
	return nil
}

func (e *Engine) repositionFood() error {
	snakes := make([][]core.Cell, 0, len(e.players))
	for _, p := range e.players {
		snakes = append(snakes, p.snake)
	}
	if err := e.food.Reposition(e.rng, e.grid, snakes, e.obstacles.cells); err != nil {
		return fmt.Errorf("reposition food: %w", err)
	}
	return nil
}

// increaseSpeed recomputes the tick interval and unlocks score features.
func (e *Engine) increaseSpeed() {
	best := e.maxScore()

	if speed := e.difficulty.Speed(best); speed != e.speed {
		e.log.Debug("speed changed", "from", e.speed, "to", speed, "score", best)
		e.speed = speed
	}
	e.startTicking()

	if e.difficulty.FoodMoves(best) && !e.foodMoving {
		e.startMovingFood(best)
	}
	if e.difficulty.ObstaclesActive(best) {
		e.updateObstacles(best)
	}
}

// startMovingFood starts the recurring food relocation. The interval is
// fixed when the timer starts.
func (e *Engine) startMovingFood(best int) {
	e.foodMoving = true
	interval := e.difficulty.FoodMoveInterval(best)
	if e.foodTimer != nil {
		e.foodTimer.Stop()
	}

	gen := e.generation
	e.foodTimer = e.sched.Every(interval, func() {
		if gen != e.generation || e.states.Current() != StatePlaying {
			return
		}
		if err := e.repositionFood(); err != nil {
			e.log.Warn("cannot move food", "error", err)
		}
	})
	e.log.Info("food started moving", "episode", e.episode, "interval", interval)
}

func (e *Engine) updateObstacles(best int) {
	target := e.difficulty.ObstacleTarget(best)
	guard := e.players[0].Head()
	placed, err := e.obstacles.FillTo(target, e.rng, e.grid, e.food.Position(), guard)
	for _, c := range placed {
		e.log.Info("obstacle spawned", "episode", e.episode, "cell", c, "count", e.obstacles.Len())
	}
	if err != nil {
		e.log.Warn("cannot place obstacle", "target", target, "error", err)
	}
}

// scheduleDeath flips the alive flag after the grace delay. A player already
// dying is not scheduled twice.
func (e *Engine) scheduleDeath(p *Player) {
	if p.dying {
		return
	}
	p.dying = true

	gen := e.generation
	t := e.sched.After(e.cfg.Players.GraceDelay, func() {
		if gen != e.generation {
			return
		}
		p.alive = false
		e.log.Debug("player died", "player", p.ID, "score", p.Score())
		if e.allDead() {
			e.gameOver()
		}
	})
	e.deathTimers = append(e.deathTimers, t)
}

func (e *Engine) allDead() bool {
	for _, p := range e.players {
		if p.alive {
			return false
		}
	}
	return true
}

func (e *Engine) maxScore() int {
	best := 0
	for _, p := range e.players {
		best = max(best, p.score)
	}
	return best
}

// gameOver records the final score and broadcasts GAME_OVER.
func (e *Engine) gameOver() {
	if s := e.states.Current(); s != StatePlaying && s != StatePaused {
		return
	}

	e.finalScore = e.maxScore()
	if e.finalScore > e.highScore {
		e.highScore = e.finalScore
		e.newRecord = true
	}
	head := e.players[0].Head()

	e.log.Info("game over",
		"episode", e.episode,
		"score", e.finalScore,
		"high_score", e.highScore,
		"record", e.newRecord,
		"ticks", e.tick)

	//nolint:errcheck // StateGameOver is always valid
	e.states.Set(StateGameOver)
	e.audio.OnGameOver()
	e.effects.OnGameOver(head)
}
