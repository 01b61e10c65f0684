package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/go-tanks/internal/game"
)

// Color palette
var (
	background = lipgloss.Color("#000000")

	// Tile styles
	brickStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#92400e")).
			Foreground(lipgloss.Color("#b45309"))

	steelStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#9ca3af")).
			Foreground(lipgloss.Color("#d1d5db"))

	waterStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#2563eb")).
			Foreground(lipgloss.Color("#60a5fa"))

	grassStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#166534")).
			Foreground(lipgloss.Color("#22c55e"))

	baseStyle = lipgloss.NewStyle().
			Background(background).
			Foreground(lipgloss.Color("#8b5cf6")).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Background(background).
			Foreground(background)

	bulletStyle = lipgloss.NewStyle().
			Background(background).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true)

	// HUD styles
	hudBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fbbf24")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	lostStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444")).
			Bold(true)

	wonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ff88")).
			Bold(true).
			Blink(true)
)

var tankGlyphs = map[game.Direction]string{
	game.DirUp:    "▲▲",
	game.DirDown:  "▼▼",
	game.DirLeft:  "◀◀",
	game.DirRight: "▶▶",
}

type cell struct{ row, col int }

// centerCell returns the tile under the center of a box.
func centerCell(r game.Rect, ts float64) cell {
	return cell{
		row: int(math.Floor((r.Y + r.H/2) / ts)),
		col: int(math.Floor((r.X + r.W/2) / ts)),
	}
}

// RenderBoard converts a snapshot into a styled terminal string.
// Each tile is 2 characters wide; tanks and bullets are drawn on the tile
// under their center.
func RenderBoard(s game.Snapshot) string {
	if len(s.Grid) == 0 || s.TileSize <= 0 {
		return "Loading level..."
	}
	ts := float64(s.TileSize)

	tanks := make(map[cell]game.Tank)
	for _, t := range s.Enemies {
		tanks[centerCell(t.Rect(), ts)] = t
	}
	// Player last so it wins a shared cell.
	if !s.Player.Destroyed {
		tanks[centerCell(s.Player.Rect(), ts)] = s.Player
	}

	bullets := make(map[cell]bool)
	for _, b := range s.Bullets {
		bullets[centerCell(b.Rect(), ts)] = true
	}

	rows := make([]string, 0, len(s.Grid))
	for r, row := range s.Grid {
		var sb strings.Builder
		for c, tile := range row {
			sb.WriteString(renderCell(tile, cell{r, c}, tanks, bullets))
		}
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, "\n")
}

// renderCell renders a single board cell. Priority: Tank > Bullet > Tile.
func renderCell(tile game.TileType, pos cell, tanks map[cell]game.Tank, bullets map[cell]bool) string {
	if t, ok := tanks[pos]; ok {
		return lipgloss.NewStyle().
			Background(background).
			Foreground(lipgloss.Color(t.Color)).
			Bold(true).
			Render(tankGlyphs[t.Dir])
	}

	if bullets[pos] {
		return bulletStyle.Render(" •")
	}

	switch tile {
	case game.Brick:
		return brickStyle.Render("▒▒")
	case game.Steel:
		return steelStyle.Render("██")
	case game.Water:
		return waterStyle.Render("≈≈")
	case game.Grass:
		return grassStyle.Render("░░")
	case game.Base:
		return baseStyle.Render("<>")
	default:
		return emptyStyle.Render("  ")
	}
}

// RenderHUD renders the heads-up display: score, enemies and session status.
func RenderHUD(s game.Snapshot, config game.GameConfig) string {
	var parts []string

	parts = append(parts, titleStyle.Render("TANKS"))
	parts = append(parts, "")

	parts = append(parts, fmt.Sprintf("Score:   %d", s.Score))
	parts = append(parts, fmt.Sprintf("Enemies: %d", len(s.Enemies)))
	if config.KillTarget > 0 {
		parts = append(parts, fmt.Sprintf("Target:  %d kills", config.KillTarget))
	}
	if config.TickRate > 0 {
		parts = append(parts, dimStyle.Render(fmt.Sprintf("Time:    %ds", s.Tick/config.TickRate)))
	}
	parts = append(parts, "")

	switch {
	case s.Status != game.StatusOver:
		parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color("#44aaff")).Render("Defend the base!"))
	case s.Won:
		parts = append(parts, wonStyle.Render("VICTORY"))
		parts = append(parts, "   Press [Enter] to play again")
	default:
		reason := "Tank destroyed"
		if s.BaseDestroyed {
			reason = "Base destroyed"
		}
		parts = append(parts, lostStyle.Render("GAME OVER"))
		parts = append(parts, dimStyle.Render(reason))
		parts = append(parts, "   Press [Enter] to restart")
	}

	parts = append(parts, "")
	parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color("#555555")).Render("WASD/Arrows: Move | Space: Fire | Q: Quit"))

	return hudBorderStyle.Render(strings.Join(parts, "\n"))
}
