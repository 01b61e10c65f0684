package screen

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/amalg/go-tanks/internal/game"
)

// Palette
var (
	colorBackground     = color.RGBA{0x00, 0x00, 0x00, 0xff}
	colorBrick          = hexColor("#92400e")
	colorBrickHighlight = hexColor("#b45309")
	colorSteel          = hexColor("#9ca3af")
	colorSteelHighlight = hexColor("#d1d5db")
	colorWater          = hexColor("#2563eb")
	colorGrass          = hexColor("#166534")
	colorBase           = hexColor("#8b5cf6")
	colorBullet         = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorTurret         = color.RGBA{0x00, 0x00, 0x00, 0xff}
	colorTrack          = hexColor("#333333")
	colorOverlay        = color.RGBA{0x00, 0x00, 0x00, 0xb0}
	colorScorePanel     = color.RGBA{0x00, 0x00, 0x00, 0x80}
)

const (
	turretSize   = 4
	turretLength = 10
	trackWidth   = 4
	eagleSteps   = 6
)

// hexColor parses "#rrggbb". Anything else renders as magenta so a bad
// color is visible instead of silently black.
func hexColor(s string) color.RGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{0xff, 0x00, 0xff, 0xff}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{0xff, 0x00, 0xff, 0xff}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// turretRect returns the barrel drawn from the center of the tank toward
// its facing.
func turretRect(t game.Tank) game.Rect {
	r := game.Rect{
		X: t.X + t.W/2 - turretSize/2,
		Y: t.Y + t.H/2 - turretSize/2,
		W: turretSize,
		H: turretSize,
	}
	switch t.Dir {
	case game.DirUp:
		r.Y -= turretLength - 2
		r.H = turretLength
	case game.DirDown:
		r.H = turretLength
	case game.DirLeft:
		r.X -= turretLength - 2
		r.W = turretLength
	case game.DirRight:
		r.W = turretLength
	}
	return r
}

// trackRects returns the two tracks, running along the axis of travel.
func trackRects(t game.Tank) [2]game.Rect {
	if t.Dir == game.DirUp || t.Dir == game.DirDown {
		return [2]game.Rect{
			{X: t.X, Y: t.Y, W: trackWidth, H: t.H},
			{X: t.X + t.W - trackWidth, Y: t.Y, W: trackWidth, H: t.H},
		}
	}
	return [2]game.Rect{
		{X: t.X, Y: t.Y, W: t.W, H: trackWidth},
		{X: t.X, Y: t.Y + t.H - trackWidth, W: t.W, H: trackWidth},
	}
}

// eagleRects approximates the base's triangle with horizontal bands that
// widen toward the bottom of the tile.
func eagleRects(x, y, ts float64) []game.Rect {
	band := ts / eagleSteps
	rects := make([]game.Rect, 0, eagleSteps)
	for i := 0; i < eagleSteps; i++ {
		w := ts * float64(i+1) / eagleSteps
		rects = append(rects, game.Rect{
			X: x + (ts-w)/2,
			Y: y + band*float64(i),
			W: w,
			H: band,
		})
	}
	return rects
}
