package game

import "math"

// Rect is an axis-aligned bounding box in pixels.
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports strict overlap. Rectangles that only share an edge do
// not collide, which keeps one-tile corridors passable for tanks.
func Intersects(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// cellOf maps a pixel coordinate to its grid cell.
func cellOf(x, y float64, tileSize int) (row, col int) {
	ts := float64(tileSize)
	return int(math.Floor(y / ts)), int(math.Floor(x / ts))
}

// gridBlocksMovement samples the four corners of the entity's box at the
// candidate position. Any corner on a tank-blocking tile or outside the grid
// rejects the move. Only corners are tested, so a step of half the box or
// more can skip over a one-tile wall; speeds are validated to stay below that.
func gridBlocksMovement(g Grid, e Entity, nextX, nextY float64, tileSize int) bool {
	corners := [4][2]float64{
		{nextX, nextY},
		{nextX + e.W, nextY},
		{nextX, nextY + e.H},
		{nextX + e.W, nextY + e.H},
	}
	for _, c := range corners {
		row, col := cellOf(c[0], c[1], tileSize)
		if !g.InBounds(row, col) || BlocksTank(g[row][col]) {
			return true
		}
	}
	return false
}

// bulletTileHit returns the cell under the bullet's center point and whether
// that cell lies inside the grid.
func bulletTileHit(g Grid, b Bullet, tileSize int) (row, col int, inBounds bool) {
	cx := b.X + b.W/2
	cy := b.Y + b.H/2
	row, col = cellOf(cx, cy, tileSize)
	return row, col, g.InBounds(row, col)
}
