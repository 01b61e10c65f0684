package game

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Rand is the random source used for enemy decisions and spawns.
// *rand.Rand satisfies it; tests pass a seeded one for deterministic replay.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithRand sets the random source.
func WithRand(r Rand) Option {
	return func(e *Engine) {
		e.rng = r
	}
}

// WithSeed seeds a private math/rand source.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay randomness
	}
}

// WithLogger sets the logger used for session events.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// Engine is the simulation of one game session. It owns the grid, tanks and
// bullets exclusively; hosts call Step and Snapshot from a single goroutine.
// Only Stop may be called from elsewhere.
type Engine struct {
	Config GameConfig

	source  Grid // pristine level, cloned on every Reset
	grid    Grid
	player  *Tank
	enemies []*Tank
	bullets []*Bullet
	input   *Input

	score         int
	kills         int
	tick          int
	nextID        int
	baseDestroyed bool
	status        Status
	won           bool

	rng    Rand
	logger *log.Logger

	onTick     func(Snapshot)
	onGameOver func(score int, won bool)
	onScore    func(score int)

	done     chan struct{}
	stopOnce sync.Once
}

// NewEngine creates a session on a copy of the given level. The level is
// cropped or padded to the configured grid size and never aliased.
func NewEngine(config GameConfig, level Grid, opts ...Option) *Engine {
	e := &Engine{
		Config: config,
		input:  NewInput(),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- gameplay randomness
	}
	if e.logger == nil {
		e.logger = log.Default().WithPrefix("game")
	}

	e.source = level.Resized(config.GridSize)
	e.Reset()
	return e
}

// OnTick sets a callback invoked after every Step with a copy of the state.
func (e *Engine) OnTick(fn func(Snapshot)) {
	e.onTick = fn
}

// OnGameOver sets the callback invoked exactly once when the session ends.
func (e *Engine) OnGameOver(fn func(score int, won bool)) {
	e.onGameOver = fn
}

// OnScore sets a callback invoked whenever the score increases.
func (e *Engine) OnScore(fn func(score int)) {
	e.onScore = fn
}

// Input returns the key state read by Step.
func (e *Engine) Input() *Input {
	return e.input
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Status returns the session phase.
func (e *Engine) Status() Status {
	return e.status
}

// Over reports whether the session has ended.
func (e *Engine) Over() bool {
	return e.status == StatusOver
}

// Reset restarts the session on a fresh copy of the current level.
// Restarting the same level twice with the same seed replays identically.
func (e *Engine) Reset() {
	e.grid = e.source.Clone()
	e.enemies = e.enemies[:0]
	e.bullets = e.bullets[:0]
	e.score = 0
	e.kills = 0
	e.tick = 0
	e.nextID = 0
	e.baseDestroyed = false
	e.status = StatusRunning
	e.won = false
	e.input.Clear()

	start := PlayerStart(e.Config)
	e.clearPlayerStart(start)
	e.player = e.newTank(RolePlayer, start, DirUp)

	for _, p := range InitialEnemyPositions(e.Config) {
		e.spawnEnemy(p)
	}
	e.logger.Debug("session reset", "enemies", len(e.enemies), "bases", e.grid.Count(Base))
}

// Load replaces the level and restarts the session on it.
func (e *Engine) Load(level Grid) {
	e.source = level.Resized(e.Config.GridSize)
	e.Reset()
}

// Run drives Step at the configured tick rate until the session ends,
// Stop is called or ctx is cancelled. Callbacks run on this goroutine.
func (e *Engine) Run(ctx context.Context) error {
	if e.Config.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", e.Config.TickRate)
	}
	ticker := time.NewTicker(time.Second / time.Duration(e.Config.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-e.done:
			return nil
		case <-ticker.C:
			e.Step()
			if e.Over() {
				return nil
			}
		}
	}
}

// Stop halts the Run loop for good: Reset and Load do not rearm it, and any
// later Run returns at once. It is safe to call more than once.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() {
		close(e.done)
	})
}

// Step advances the simulation by one tick. The order of the phases is
// fixed; later phases observe the results of earlier ones.
func (e *Engine) Step() {
	if e.status == StatusOver {
		return
	}
	if e.checkTerminal() {
		return
	}

	e.replenishEnemies()

	dir, moving := e.input.Direction()
	e.movePlayer(dir, moving, e.input.Firing())
	for _, enemy := range e.enemies {
		e.moveEnemy(enemy)
	}

	e.advanceBullets()
	e.cleanup()
	e.tick++

	if e.onTick != nil {
		e.onTick(e.Snapshot())
	}
}

// checkTerminal ends the session on base loss, player loss or a reached
// kill target, and reports whether it did.
func (e *Engine) checkTerminal() bool {
	switch {
	case e.baseDestroyed || e.player.Destroyed:
		e.finish(false)
	case e.Config.KillTarget > 0 && e.kills >= e.Config.KillTarget:
		e.finish(true)
	default:
		return false
	}
	return true
}

func (e *Engine) finish(won bool) {
	e.status = StatusOver
	e.won = won
	e.logger.Info("game over",
		"score", e.score,
		"won", won,
		"tick", e.tick,
		"base_destroyed", e.baseDestroyed,
	)
	if e.onGameOver != nil {
		e.onGameOver(e.score, won)
	}
}

// cleanup drops destroyed bullets and enemies.
func (e *Engine) cleanup() {
	bullets := e.bullets[:0]
	for _, b := range e.bullets {
		if !b.Destroyed {
			bullets = append(bullets, b)
		}
	}
	clear(e.bullets[len(bullets):])
	e.bullets = bullets

	enemies := e.enemies[:0]
	for _, t := range e.enemies {
		if !t.Destroyed {
			enemies = append(enemies, t)
		}
	}
	clear(e.enemies[len(enemies):])
	e.enemies = enemies
}

func (e *Engine) addKill() {
	e.kills++
	e.score += e.Config.KillScore
	if e.onScore != nil {
		e.onScore(e.score)
	}
}

func (e *Engine) newID(prefix string) string {
	e.nextID++
	return fmt.Sprintf("%s-%d", prefix, e.nextID)
}

// Snapshot returns a deep copy of the state for rendering.
func (e *Engine) Snapshot() Snapshot {
	enemies := make([]Tank, len(e.enemies))
	for i, t := range e.enemies {
		enemies[i] = *t
	}
	bullets := make([]Bullet, len(e.bullets))
	for i, b := range e.bullets {
		bullets[i] = *b
	}

	return Snapshot{
		Grid:          e.grid.Clone(),
		Player:        *e.player,
		Enemies:       enemies,
		Bullets:       bullets,
		Score:         e.score,
		Tick:          e.tick,
		BaseDestroyed: e.baseDestroyed,
		Status:        e.status,
		Won:           e.won,
		TileSize:      e.Config.TileSize,
	}
}
