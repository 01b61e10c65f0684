package game

// Grid is a square matrix of tile codes indexed [row][col].
type Grid [][]TileType

// NewGrid converts an externally supplied integer matrix into an n×n grid.
// Rows and columns beyond n are cropped and missing cells are zero-filled,
// so a malformed level never reaches the simulation.
func NewGrid(src [][]int, n int) Grid {
	g := EmptyGrid(n)
	for r := 0; r < n && r < len(src); r++ {
		for c := 0; c < n && c < len(src[r]); c++ {
			g[r][c] = TileType(src[r][c])
		}
	}
	return g
}

// EmptyGrid returns an n×n grid of Empty tiles.
func EmptyGrid(n int) Grid {
	g := make(Grid, n)
	for r := range g {
		g[r] = make([]TileType, n)
	}
	return g
}

// Resized returns a deep copy of g cropped or padded to n×n.
func (g Grid) Resized(n int) Grid {
	out := EmptyGrid(n)
	for r := 0; r < n && r < len(g); r++ {
		copy(out[r], g[r])
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r := range g {
		out[r] = make([]TileType, len(g[r]))
		copy(out[r], g[r])
	}
	return out
}

// Ints converts the grid back to the integer matrix used by level files.
func (g Grid) Ints() [][]int {
	out := make([][]int, len(g))
	for r := range g {
		out[r] = make([]int, len(g[r]))
		for c, t := range g[r] {
			out[r][c] = int(t)
		}
	}
	return out
}

// Size returns the side length of the grid.
func (g Grid) Size() int {
	return len(g)
}

// InBounds reports whether (row, col) lies inside the grid.
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < len(g) && col >= 0 && col < len(g[row])
}

// TileAt returns the tile at (row, col). Cells outside the grid read as
// Steel, which gives every level an implicit indestructible border.
func (g Grid) TileAt(row, col int) TileType {
	if !g.InBounds(row, col) {
		return Steel
	}
	return g[row][col]
}

// Destroy clears the cell at (row, col) and reports whether it held the base.
func (g Grid) Destroy(row, col int) (baseDestroyed bool) {
	if !g.InBounds(row, col) {
		return false
	}
	baseDestroyed = g[row][col] == Base
	g[row][col] = Empty
	return baseDestroyed
}

// Count returns how many cells hold the given tile.
func (g Grid) Count(t TileType) int {
	n := 0
	for _, row := range g {
		for _, tile := range row {
			if tile == t {
				n++
			}
		}
	}
	return n
}

// BlocksTank reports whether tanks can not enter a tile.
func BlocksTank(t TileType) bool {
	switch t {
	case Brick, Steel, Water, Base:
		return true
	}
	return false
}

// BlocksBullet reports whether a tile stops bullets. Water does not.
func BlocksBullet(t TileType) bool {
	switch t {
	case Brick, Steel, Base:
		return true
	}
	return false
}

// Destructible reports whether a bullet clears the tile on impact.
func Destructible(t TileType) bool {
	return t == Brick || t == Base
}
