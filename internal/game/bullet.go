package game

// advanceBullets moves every live bullet and resolves what it hit.
// A bullet ends the tick in exactly one state: absorbed by a wall, out of
// bounds, spent on a tank, or still flying.
func (e *Engine) advanceBullets() {
	for _, b := range e.bullets {
		if b.Destroyed {
			continue
		}
		dx, dy := b.Dir.delta()
		b.X += dx * b.Speed
		b.Y += dy * b.Speed

		if e.resolveTileHit(b) {
			continue
		}
		e.resolveTankHit(b)
	}
}

// resolveTileHit checks the cell under the bullet's center. Brick and base
// cells are cleared on impact, steel absorbs the bullet, water and grass
// let it pass. Leaving the grid destroys the bullet.
func (e *Engine) resolveTileHit(b *Bullet) bool {
	row, col, inBounds := bulletTileHit(e.grid, *b, e.Config.TileSize)
	if !inBounds {
		b.Destroyed = true
		return true
	}

	tile := e.grid[row][col]
	if !BlocksBullet(tile) {
		return false
	}
	b.Destroyed = true
	if Destructible(tile) && e.grid.Destroy(row, col) {
		e.baseDestroyed = true
		e.logger.Info("base destroyed", "row", row, "col", col, "by", b.OwnerID)
	}
	return true
}

// resolveTankHit applies bullet damage. Enemy bullets only hurt the player
// and player bullets only hurt enemies; a tank is never hit by its own shot.
func (e *Engine) resolveTankHit(b *Bullet) {
	box := b.Rect()
	p := e.player

	if b.OwnerID != p.ID {
		if !p.Destroyed && Intersects(box, p.Rect()) {
			p.Destroyed = true
			b.Destroyed = true
			e.logger.Debug("player hit", "by", b.OwnerID)
		}
		return
	}

	for _, t := range e.enemies {
		if t.Destroyed || !Intersects(box, t.Rect()) {
			continue
		}
		t.Destroyed = true
		b.Destroyed = true
		e.addKill()
		e.logger.Debug("enemy destroyed", "id", t.ID, "score", e.score)
		return
	}
}
