package game

import "testing"

func TestIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	cases := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlap", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 10, H: 10}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 10, H: 10}, false},
		{"touching corner", Rect{X: 10, Y: 10, W: 5, H: 5}, false},
		{"apart", Rect{X: 30, Y: 30, W: 5, H: 5}, false},
		{"sliver", Rect{X: 9.5, Y: 0, W: 5, H: 5}, true},
	}
	for _, tc := range cases {
		if got := Intersects(a, tc.b); got != tc.want {
			t.Errorf("%s: Intersects = %v, want %v", tc.name, got, tc.want)
		}
		if got := Intersects(tc.b, a); got != tc.want {
			t.Errorf("%s (swapped): Intersects = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestGridBlocksMovementCorners(t *testing.T) {
	const ts = 24
	g := EmptyGrid(6)
	g[2][3] = Brick
	tank := Entity{W: 22, H: 22}

	// Box fully inside (1,1).
	if gridBlocksMovement(g, tank, 24, 24, ts) {
		t.Error("open tile should not block")
	}
	// Right corners reach column 3 on row 2.
	if !gridBlocksMovement(g, tank, 60, 48, ts) {
		t.Error("corner on a brick should block")
	}
	// Right edge at x+w = 72 sits exactly on column 3's left boundary.
	if !gridBlocksMovement(g, tank, 50, 48, ts) {
		t.Error("edge sample on the tile boundary should count as inside the brick")
	}
	if gridBlocksMovement(g, tank, 49, 48, ts) {
		t.Error("box ending before column 3 should pass")
	}
	// Outside the grid.
	if !gridBlocksMovement(g, tank, -1, 24, ts) {
		t.Error("leaving the grid should block")
	}
	if !gridBlocksMovement(g, tank, 24, 6*ts-20, ts) {
		t.Error("bottom corners below the grid should block")
	}
}

func TestGridBlocksMovementWaterAndGrass(t *testing.T) {
	const ts = 24
	g := EmptyGrid(4)
	g[1][1] = Water
	g[2][2] = Grass
	tank := Entity{W: 22, H: 22}

	if !gridBlocksMovement(g, tank, 24, 24, ts) {
		t.Error("water should block tanks")
	}
	if gridBlocksMovement(g, tank, 48, 48, ts) {
		t.Error("grass should not block tanks")
	}
}

func TestBulletTileHitUsesCenter(t *testing.T) {
	const ts = 24
	g := EmptyGrid(4)
	b := Bullet{Entity: Entity{X: 22, Y: 46, W: 4, H: 4}}

	row, col, ok := bulletTileHit(g, b, ts)
	if !ok || row != 2 || col != 1 {
		t.Errorf("center (24,48) should map to (2,1), got (%d,%d) ok=%v", row, col, ok)
	}

	b.X, b.Y = -5, 10
	if _, _, ok := bulletTileHit(g, b, ts); ok {
		t.Error("center left of the grid should be out of bounds")
	}
}
