// Package level builds, loads and generates playfield layouts.
package level

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/amalg/go-tanks/internal/game"
)

// classicObstacles is the number of random obstacle placements tried by Classic.
const classicObstacles = 50

// Default returns the fallback layout: a steel border and the base at bottom
// center, shielded by bricks on its left, right and top.
func Default(n int) game.Grid {
	g := game.EmptyGrid(n)
	for i := 0; i < n; i++ {
		g[0][i] = game.Steel
		g[n-1][i] = game.Steel
		g[i][0] = game.Steel
		g[i][n-1] = game.Steel
	}

	mid := n / 2
	g[n-2][mid] = game.Base
	g[n-2][mid-1] = game.Brick
	g[n-2][mid+1] = game.Brick
	g[n-3][mid-1] = game.Brick
	g[n-3][mid] = game.Brick
	g[n-3][mid+1] = game.Brick
	return g
}

// Classic returns the default layout scattered with random obstacles.
//
// Layout rules:
//   - Obstacles land in columns 1..N-2 and rows 2..N-3
//   - One obstacle in five is steel, the rest brick
//   - Nothing is placed near the base
//   - Cells under the player start, the initial enemies and the enemy spawn
//     points are kept clear
func Classic(config game.GameConfig, rng game.Rand) game.Grid {
	n := config.GridSize
	g := Default(n)
	mid := n / 2

	for i := 0; i < classicObstacles; i++ {
		rx := rng.Intn(n-2) + 1
		ry := rng.Intn(n-4) + 2
		if abs(rx-mid) < 3 && ry > n-5 {
			continue
		}
		if rng.Float64() > 0.8 {
			g[ry][rx] = game.Steel
		} else {
			g[ry][rx] = game.Brick
		}
	}

	for cell := range safeCells(config) {
		if g[cell[0]][cell[1]] != game.Base {
			g[cell[0]][cell[1]] = game.Empty
		}
	}
	return g
}

// safeCells returns every in-bounds cell touched by a tank box placed at one
// of the fixed start or spawn points.
func safeCells(config game.GameConfig) map[[2]int]bool {
	points := []game.Point{game.PlayerStart(config)}
	points = append(points, game.InitialEnemyPositions(config)...)
	points = append(points, game.SpawnPoints(config)...)

	ts := float64(config.TileSize)
	size := float64(config.TankSize)
	safe := make(map[[2]int]bool)
	for _, p := range points {
		for _, y := range []float64{p.Y, p.Y + size} {
			for _, x := range []float64{p.X, p.X + size} {
				r, c := int(math.Floor(y/ts)), int(math.Floor(x/ts))
				// The steel border stays.
				if r <= 0 || c <= 0 || r >= config.GridSize-1 || c >= config.GridSize-1 {
					continue
				}
				safe[[2]int{r, c}] = true
			}
		}
	}
	return safe
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// File is the on-disk JSON form of a layout.
type File struct {
	Layout [][]int `json:"layout"`
}

// Parse decodes a JSON layout, either {"layout": [[...]]} or a bare [[...]],
// and normalizes it to n×n.
func Parse(data []byte, n int) (game.Grid, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("empty level data")
	}

	var rows [][]int
	if data[0] == '[' {
		if err := json.Unmarshal(data, &rows); err != nil {
			return nil, fmt.Errorf("parse level array: %w", err)
		}
	} else {
		var f File
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse level object: %w", err)
		}
		rows = f.Layout
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("level has no rows")
	}
	return game.NewGrid(rows, n), nil
}

// LoadFile reads and parses a JSON level file.
func LoadFile(path string, n int) (game.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level file: %w", err)
	}
	g, err := Parse(data, n)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return g, nil
}

// Marshal encodes a grid in the {"layout": [[...]]} form.
func Marshal(g game.Grid) ([]byte, error) {
	return json.Marshal(File{Layout: g.Ints()})
}
