// Package screen draws engine snapshots onto an ebiten canvas and hosts the
// game in a desktop window.
package screen

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/amalg/go-tanks/internal/game"
)

// Draw renders a snapshot. It reads only the snapshot and never touches
// engine state.
func Draw(dst *ebiten.Image, s game.Snapshot) {
	dst.Fill(colorBackground)
	drawGrid(dst, s.Grid, float64(s.TileSize))

	if !s.Player.Destroyed {
		drawTank(dst, s.Player)
	}
	for _, t := range s.Enemies {
		drawTank(dst, t)
	}
	for _, b := range s.Bullets {
		fillRect(dst, b.Rect(), colorBullet)
	}

	drawScore(dst, s.Score)
	if s.Status == game.StatusOver {
		drawGameOver(dst, s)
	}
}

func drawGrid(dst *ebiten.Image, g game.Grid, ts float64) {
	for r, row := range g {
		for c, tile := range row {
			x, y := float64(c)*ts, float64(r)*ts
			switch tile {
			case game.Brick:
				fillRect(dst, game.Rect{X: x + 1, Y: y + 1, W: ts - 2, H: ts - 2}, colorBrick)
				fillRect(dst, game.Rect{X: x + 4, Y: y + 4, W: ts / 2, H: ts / 2}, colorBrickHighlight)
			case game.Steel:
				fillRect(dst, game.Rect{X: x, Y: y, W: ts, H: ts}, colorSteel)
				fillRect(dst, game.Rect{X: x + 4, Y: y + 4, W: ts - 8, H: ts - 8}, colorSteelHighlight)
			case game.Water:
				fillRect(dst, game.Rect{X: x, Y: y, W: ts, H: ts}, colorWater)
			case game.Grass:
				fillRect(dst, game.Rect{X: x, Y: y, W: ts, H: ts}, colorGrass)
			case game.Base:
				for _, band := range eagleRects(x, y, ts) {
					fillRect(dst, band, colorBase)
				}
			}
		}
	}
}

func drawTank(dst *ebiten.Image, t game.Tank) {
	fillRect(dst, t.Rect(), hexColor(t.Color))
	fillRect(dst, turretRect(t), colorTurret)
	for _, track := range trackRects(t) {
		fillRect(dst, track, colorTrack)
	}
}

func drawScore(dst *ebiten.Image, score int) {
	label := fmt.Sprintf("SCORE: %d", score)
	fillRect(dst, game.Rect{X: 8, Y: 8, W: float64(len(label)*7 + 16), H: 24}, colorScorePanel)
	drawText(dst, label, 16, 25, color.White)
}

func drawGameOver(dst *ebiten.Image, s game.Snapshot) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	fillRect(dst, game.Rect{W: float64(w), H: float64(h)}, colorOverlay)

	title := "GAME OVER"
	if s.Won {
		title = "VICTORY"
	}
	lines := []string{
		title,
		fmt.Sprintf("Score: %d", s.Score),
		"Press Enter to restart",
	}
	y := h/2 - len(lines)*10
	for _, line := range lines {
		drawText(dst, line, (w-len(line)*7)/2, y, color.White)
		y += 20
	}
}

func fillRect(dst *ebiten.Image, r game.Rect, clr color.Color) {
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// drawText uses basicfont, which is 7px wide per glyph.
func drawText(dst *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(dst, s, basicfont.Face7x13, x, y, clr)
}
