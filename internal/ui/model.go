package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/go-tanks/internal/game"
)

// tickMsg drives one simulation step.
type tickMsg time.Time

// levelMsg carries a reloaded level from the file watcher.
type levelMsg game.Grid

// levelsClosedMsg reports that the watcher has shut down.
type levelsClosedMsg struct{}

// keyAliases maps bubbletea key strings onto engine keys.
var keyAliases = map[string]game.Key{
	"up":    game.KeyArrowUp,
	"down":  game.KeyArrowDown,
	"left":  game.KeyArrowLeft,
	"right": game.KeyArrowRight,
	"w":     game.KeyW,
	"a":     game.KeyA,
	"s":     game.KeyS,
	"d":     game.KeyD,
	" ":     game.KeyFire,
}

// Model is the Bubbletea model for the terminal game.
//
// Terminals report key presses but never releases, so a press holds its key
// for holdTicks steps and autorepeat keeps refreshing it. A new direction
// releases the other directions immediately.
type Model struct {
	engine    *game.Engine
	levels    <-chan game.Grid
	held      map[game.Key]int // Remaining ticks per held key
	holdTicks int
	quitting  bool
}

// NewModel creates a TUI model driving engine. levels may be nil.
func NewModel(engine *game.Engine, levels <-chan game.Grid) Model {
	hold := engine.Config.TickRate / 2
	if hold < 1 {
		hold = 1
	}
	return Model{
		engine:    engine,
		levels:    levels,
		held:      make(map[game.Key]int),
		holdTicks: hold,
	}
}

// Init starts the tick loop and listens for level reloads.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(m.engine.Config.TickRate), waitForLevel(m.levels))
}

// Update handles key presses, ticks and level reloads.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		m.step()
		return m, tick(m.engine.Config.TickRate)

	case levelMsg:
		m.engine.Load(game.Grid(msg))
		m.releaseAll()
		return m, waitForLevel(m.levels)

	case levelsClosedMsg:
		m.levels = nil
	}

	return m, nil
}

// View renders the current snapshot.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	s := m.engine.Snapshot()
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		RenderBoard(s),
		"  ",
		RenderHUD(s, m.engine.Config),
	) + "\n"
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		if m.engine.Over() {
			m.releaseAll()
			m.engine.Reset()
		}
		return m, nil
	}

	key, ok := keyAliases[msg.String()]
	if !ok {
		return m, nil
	}
	if key == game.KeyFire {
		// One shot per press; the engine's cooldown throttles autorepeat.
		m.held[key] = 1
		return m, nil
	}
	for k := range m.held {
		if k != game.KeyFire {
			delete(m.held, k)
		}
	}
	m.held[key] = m.holdTicks
	return m, nil
}

// step mirrors the held keys into the engine input and advances one tick.
func (m Model) step() {
	input := m.engine.Input()
	for _, key := range keyAliases {
		if m.held[key] > 0 {
			input.Press(key)
		} else {
			input.Release(key)
		}
	}
	m.engine.Step()

	for k, n := range m.held {
		if n <= 1 {
			delete(m.held, k)
		} else {
			m.held[k] = n - 1
		}
	}
}

func (m Model) releaseAll() {
	for k := range m.held {
		delete(m.held, k)
	}
	m.engine.Input().Clear()
}

func tick(rate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(rate), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForLevel returns a Cmd that waits for the next reloaded level.
func waitForLevel(levels <-chan game.Grid) tea.Cmd {
	if levels == nil {
		return nil
	}
	return func() tea.Msg {
		g, ok := <-levels
		if !ok {
			return levelsClosedMsg{}
		}
		return levelMsg(g)
	}
}
