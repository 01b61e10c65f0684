package screen

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/amalg/go-tanks/internal/game"
)

// keyBindings maps physical keys onto engine input keys.
var keyBindings = map[ebiten.Key]game.Key{
	ebiten.KeyArrowUp:    game.KeyArrowUp,
	ebiten.KeyArrowDown:  game.KeyArrowDown,
	ebiten.KeyArrowLeft:  game.KeyArrowLeft,
	ebiten.KeyArrowRight: game.KeyArrowRight,
	ebiten.KeyW:          game.KeyW,
	ebiten.KeyA:          game.KeyA,
	ebiten.KeyS:          game.KeyS,
	ebiten.KeyD:          game.KeyD,
	ebiten.KeySpace:      game.KeyFire,
}

// Game adapts an Engine to ebiten.Game. ebiten calls Update at the engine's
// tick rate, so each Update is exactly one Step.
type Game struct {
	engine *game.Engine
	levels <-chan game.Grid
	logger *log.Logger
}

// NewGame wraps engine. levels may be nil; when set, grids received on it
// replace the level between frames.
func NewGame(engine *game.Engine, levels <-chan game.Grid, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default().WithPrefix("screen")
	}
	return &Game{
		engine: engine,
		levels: levels,
		logger: logger,
	}
}

// Run opens the window and blocks until it closes.
func (g *Game) Run(title string) error {
	size := g.engine.Config.CanvasSize()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(size, size)
	ebiten.SetTPS(g.engine.Config.TickRate)
	return ebiten.RunGame(g)
}

// Update samples input and advances the simulation by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.drainLevels()

	if g.engine.Over() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.logger.Info("restarting")
			g.engine.Reset()
		}
		return nil
	}

	input := g.engine.Input()
	for k, key := range keyBindings {
		if ebiten.IsKeyPressed(k) {
			input.Press(key)
		} else {
			input.Release(key)
		}
	}
	g.engine.Step()
	return nil
}

func (g *Game) drainLevels() {
	if g.levels == nil {
		return
	}
	for {
		select {
		case grid, ok := <-g.levels:
			if !ok {
				g.levels = nil
				return
			}
			g.logger.Info("loading new level")
			g.engine.Load(grid)
		default:
			return
		}
	}
}

// Draw renders the current state.
func (g *Game) Draw(dst *ebiten.Image) {
	Draw(dst, g.engine.Snapshot())
}

// Layout fixes the logical canvas at the playfield size.
func (g *Game) Layout(_, _ int) (int, int) {
	size := g.engine.Config.CanvasSize()
	return size, size
}
