package ui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/amalg/go-tanks/internal/game"
)

func quietConfig() game.GameConfig {
	config := game.DefaultConfig()
	config.EnemyTurnChance = 0
	config.EnemyFireChance = 0
	config.EnemySpawnChance = 0
	return config
}

func newTestModel(t *testing.T, level game.Grid) Model {
	t.Helper()
	config := quietConfig()
	if level == nil {
		level = game.EmptyGrid(config.GridSize)
	}
	engine := game.NewEngine(config, level, game.WithSeed(1), game.WithLogger(log.New(io.Discard)))
	return NewModel(engine, nil)
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyPressHoldsForHoldTicks(t *testing.T) {
	m := newTestModel(t, nil)
	startY := m.engine.Snapshot().Player.Y

	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	for i := 0; i < m.holdTicks+5; i++ {
		m = send(t, m, tickMsg{})
	}

	moved := startY - m.engine.Snapshot().Player.Y
	want := float64(m.holdTicks) * m.engine.Config.PlayerSpeed
	if moved != want {
		t.Errorf("expected the press to move %.0fpx, moved %.0fpx", want, moved)
	}
	if m.engine.Input().IsHeld(game.KeyArrowUp) {
		t.Error("key should be released once the hold expires")
	}
}

func TestNewDirectionReleasesOthers(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, runeKey('w'))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})

	if _, ok := m.held[game.KeyW]; ok {
		t.Error("w should be released by a new direction")
	}
	if m.held[game.KeyArrowLeft] != m.holdTicks {
		t.Errorf("left should be held for %d ticks", m.holdTicks)
	}

	startX := m.engine.Snapshot().Player.X
	m = send(t, m, tickMsg{})
	p := m.engine.Snapshot().Player
	if p.Dir != game.DirLeft || p.X >= startX {
		t.Errorf("player should move left, got dir=%s x=%.0f", p.Dir, p.X)
	}
}

func TestSpaceFiresOnce(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = send(t, m, tickMsg{})

	s := m.engine.Snapshot()
	if len(s.Bullets) != 1 || s.Bullets[0].OwnerID != "player" {
		t.Fatalf("expected one player bullet, got %+v", s.Bullets)
	}

	m = send(t, m, tickMsg{})
	if m.engine.Input().Firing() {
		t.Error("fire should only last one tick")
	}
}

func TestEnterRestartsAfterGameOver(t *testing.T) {
	config := quietConfig()
	level := game.EmptyGrid(config.GridSize)
	// Base directly above the player start.
	start := game.PlayerStart(config)
	col := int(start.X+float64(config.TankSize)/2) / config.TileSize
	level[20][col] = game.Base

	m := newTestModel(t, level)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.engine.Over() {
		t.Fatal("enter should do nothing while running")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	for i := 0; i < 200 && !m.engine.Over(); i++ {
		m = send(t, m, tickMsg{})
	}
	if !m.engine.Over() {
		t.Fatal("shooting the base should end the game")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	s := m.engine.Snapshot()
	if s.Status != game.StatusRunning || s.Grid[20][col] != game.Base {
		t.Errorf("enter should restart on a fresh copy of the level")
	}
}

func TestLevelMsgLoadsLevel(t *testing.T) {
	m := newTestModel(t, nil)
	g := game.EmptyGrid(26)
	g[0][0] = game.Steel

	m = send(t, m, levelMsg(g))
	if m.engine.Snapshot().Grid[0][0] != game.Steel {
		t.Error("level message should load the new grid")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if next.(Model).View() != "Goodbye!\n" {
		t.Error("quitting model should say goodbye")
	}
}
