package game

// PlayerStart returns the player tank's start position.
func PlayerStart(config GameConfig) Point {
	ts := float64(config.TileSize)
	n := float64(config.GridSize / 2)
	return Point{X: ts * (n - 4), Y: ts * float64(config.GridSize-4)}
}

// InitialEnemyPositions returns where enemies stand when a session starts:
// top-left, top-right and top-center, two tiles in from the edge.
func InitialEnemyPositions(config GameConfig) []Point {
	ts := float64(config.TileSize)
	n := config.GridSize
	return []Point{
		{X: ts * 2, Y: ts * 2},
		{X: ts * float64(n-3), Y: ts * 2},
		{X: ts * float64(n/2), Y: ts * 2},
	}
}

// SpawnPoints returns the designated points used to replenish enemies.
func SpawnPoints(config GameConfig) []Point {
	ts := float64(config.TileSize)
	canvas := float64(config.CanvasSize())
	return []Point{
		{X: ts, Y: ts},
		{X: canvas - ts*2, Y: ts},
		{X: canvas / 2, Y: ts},
	}
}

func (e *Engine) newTank(role Role, at Point, dir Direction) *Tank {
	size := float64(e.Config.TankSize)
	t := &Tank{
		Entity: Entity{
			X:   at.X,
			Y:   at.Y,
			W:   size,
			H:   size,
			Dir: dir,
		},
		Role:   role,
		Health: 1,
	}
	switch role {
	case RolePlayer:
		t.ID = "player"
		t.Speed = e.Config.PlayerSpeed
		t.Color = ColorPlayer
	case RoleEnemy:
		t.ID = e.newID("enemy")
		t.Speed = e.Config.EnemySpeed
		t.Color = ColorEnemyBasic
		if e.rng.Float64() > 0.5 {
			t.Color = ColorEnemyFast
		}
	}
	return t
}

// clearPlayerStart empties the tiles under the player's start box in the
// session grid so no level can wall the player in. The base is left alone.
func (e *Engine) clearPlayerStart(at Point) {
	size := float64(e.Config.TankSize)
	for _, y := range []float64{at.Y, at.Y + size} {
		for _, x := range []float64{at.X, at.X + size} {
			row, col := cellOf(x, y, e.Config.TileSize)
			if e.grid.InBounds(row, col) && e.grid[row][col] != Base {
				e.grid[row][col] = Empty
			}
		}
	}
}

// spawnEnemy places a new enemy at p unless the spot is blocked by the
// grid or occupied by a live tank.
func (e *Engine) spawnEnemy(p Point) bool {
	size := float64(e.Config.TankSize)
	box := Entity{X: p.X, Y: p.Y, W: size, H: size}
	if gridBlocksMovement(e.grid, box, p.X, p.Y, e.Config.TileSize) || e.tankOverlaps(box.Rect(), "") {
		e.logger.Debug("spawn point occupied", "x", p.X, "y", p.Y)
		return false
	}

	t := e.newTank(RoleEnemy, p, DirDown)
	e.enemies = append(e.enemies, t)
	e.logger.Debug("enemy spawned", "id", t.ID, "x", p.X, "y", p.Y)
	return true
}

// replenishEnemies occasionally spawns an enemy while fewer than
// MinEnemies are alive.
func (e *Engine) replenishEnemies() {
	if e.liveEnemies() >= e.Config.MinEnemies {
		return
	}
	if e.rng.Float64() >= e.Config.EnemySpawnChance {
		return
	}
	spawns := SpawnPoints(e.Config)
	e.spawnEnemy(spawns[e.rng.Intn(len(spawns))])
}

func (e *Engine) liveEnemies() int {
	n := 0
	for _, t := range e.enemies {
		if !t.Destroyed {
			n++
		}
	}
	return n
}
