package game

// movePlayer applies the sampled input to the player tank.
func (e *Engine) movePlayer(dir Direction, moving, fire bool) {
	p := e.player
	if p.Destroyed {
		return
	}
	if moving {
		p.Dir = dir
		e.tryMove(p)
	}
	e.updateWeapon(p, fire)
}

// moveEnemy runs the wandering AI for one enemy: an occasional random turn,
// one step forward, a random turn when blocked, and an occasional shot.
func (e *Engine) moveEnemy(t *Tank) {
	if t.Destroyed {
		return
	}
	if e.rng.Float64() < e.Config.EnemyTurnChance {
		t.Dir = e.randomDirection()
	}
	if !e.tryMove(t) {
		t.Dir = e.randomDirection()
	}
	e.updateWeapon(t, e.rng.Float64() < e.Config.EnemyFireChance)
}

// tryMove steps the tank along its facing direction unless the grid or
// another tank blocks the candidate position. Tanks never overlap.
func (e *Engine) tryMove(t *Tank) bool {
	dx, dy := t.Dir.delta()
	nx := t.X + dx*t.Speed
	ny := t.Y + dy*t.Speed

	if gridBlocksMovement(e.grid, t.Entity, nx, ny, e.Config.TileSize) {
		return false
	}
	if e.tankOverlaps(Rect{X: nx, Y: ny, W: t.W, H: t.H}, t.ID) {
		return false
	}

	t.X = nx
	t.Y = ny
	return true
}

// tankOverlaps reports whether r overlaps any live tank other than exceptID.
func (e *Engine) tankOverlaps(r Rect, exceptID string) bool {
	if p := e.player; p != nil && p.ID != exceptID && !p.Destroyed && Intersects(r, p.Rect()) {
		return true
	}
	for _, other := range e.enemies {
		if other.ID == exceptID || other.Destroyed {
			continue
		}
		if Intersects(r, other.Rect()) {
			return true
		}
	}
	return false
}

func (e *Engine) randomDirection() Direction {
	return Directions[e.rng.Intn(len(Directions))]
}

// updateWeapon ticks the cooldown down and fires if asked and ready.
func (e *Engine) updateWeapon(t *Tank, fire bool) {
	if t.Cooldown > 0 {
		t.Cooldown--
	}
	if fire && t.Cooldown <= 0 {
		e.fire(t)
	}
}

// fire spawns a bullet centered on the tank, heading where the tank faces.
func (e *Engine) fire(t *Tank) {
	t.Cooldown = e.Config.FireCooldown
	size := float64(e.Config.BulletSize)
	b := &Bullet{
		Entity: Entity{
			ID:    e.newID("bullet"),
			X:     t.X + t.W/2 - size/2,
			Y:     t.Y + t.H/2 - size/2,
			W:     size,
			H:     size,
			Dir:   t.Dir,
			Speed: e.Config.BulletSpeed,
		},
		OwnerID: t.ID,
	}
	e.bullets = append(e.bullets, b)
}
