package game

import "testing"

// fixedRand returns the same roll every time.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(n int) int { return r.n % n }

// loneEnemy clears the initial enemies and adds one at (x, y).
func loneEnemy(e *Engine, x, y float64, dir Direction) *Tank {
	e.enemies = nil
	t := e.newTank(RoleEnemy, Point{X: x, Y: y}, dir)
	e.enemies = append(e.enemies, t)
	return t
}

func TestEnemyTurnsWhenBlockedByWall(t *testing.T) {
	config := testConfig()
	e := newTestEngine(t, config, borderedGrid(config.GridSize))
	enemy := loneEnemy(e, 24, 24, DirUp)
	e.rng = fixedRand{f: 0.99, n: int(DirRight)}

	e.moveEnemy(enemy)

	if enemy.Dir != DirRight {
		t.Errorf("blocked enemy should turn right, faces %s", enemy.Dir)
	}
	if enemy.X != 24 || enemy.Y != 24 {
		t.Errorf("blocked enemy should stay put, at (%.1f,%.1f)", enemy.X, enemy.Y)
	}
}

func TestEnemyTurnsWhenBlockedByTank(t *testing.T) {
	config := testConfig()
	e := newTestEngine(t, config, borderedGrid(config.GridSize))
	enemy := loneEnemy(e, 240, 240, DirRight)
	other := e.newTank(RoleEnemy, Point{X: 263, Y: 240}, DirLeft)
	e.enemies = append(e.enemies, other)
	e.rng = fixedRand{f: 0.99, n: int(DirDown)}

	e.moveEnemy(enemy)

	if enemy.Dir != DirDown {
		t.Errorf("enemy blocked by a tank should turn down, faces %s", enemy.Dir)
	}
	if enemy.X != 240 {
		t.Errorf("enemy should not move into the other tank, x=%.1f", enemy.X)
	}
}

func TestEnemyRandomTurn(t *testing.T) {
	config := testConfig()
	config.EnemyTurnChance = 0.5
	e := newTestEngine(t, config, borderedGrid(config.GridSize))

	enemy := loneEnemy(e, 240, 240, DirUp)
	e.rng = fixedRand{f: 0.1, n: int(DirLeft)}
	e.moveEnemy(enemy)
	if enemy.Dir != DirLeft || enemy.X != 240-config.EnemySpeed || enemy.Y != 240 {
		t.Errorf("roll under the turn chance should turn then step left, got %s at (%.1f,%.1f)", enemy.Dir, enemy.X, enemy.Y)
	}

	enemy = loneEnemy(e, 240, 240, DirUp)
	e.rng = fixedRand{f: 0.99, n: int(DirLeft)}
	e.moveEnemy(enemy)
	if enemy.Dir != DirUp || enemy.Y != 240-config.EnemySpeed {
		t.Errorf("roll over the turn chance should keep heading up, got %s at y=%.1f", enemy.Dir, enemy.Y)
	}
}

func TestEnemyFireGatedByCooldown(t *testing.T) {
	config := testConfig()
	config.EnemyFireChance = 0.5
	e := newTestEngine(t, config, borderedGrid(config.GridSize))
	e.rng = fixedRand{f: 0.1, n: 0}

	enemy := loneEnemy(e, 240, 240, DirDown)
	enemy.Cooldown = 5
	e.moveEnemy(enemy)
	if len(e.bullets) != 0 {
		t.Fatal("enemy should not fire while cooling down")
	}
	if enemy.Cooldown != 4 {
		t.Errorf("cooldown should tick down to 4, got %d", enemy.Cooldown)
	}

	enemy.Cooldown = 1
	e.moveEnemy(enemy)
	if len(e.bullets) != 1 {
		t.Fatalf("enemy should fire once the cooldown expires, bullets=%d", len(e.bullets))
	}
	if e.bullets[0].OwnerID != enemy.ID || e.bullets[0].Dir != DirDown {
		t.Errorf("unexpected bullet %+v", e.bullets[0])
	}
	if enemy.Cooldown != config.FireCooldown {
		t.Errorf("firing should reset the cooldown to %d, got %d", config.FireCooldown, enemy.Cooldown)
	}

	e.bullets = nil
	enemy.Cooldown = 0
	e.rng = fixedRand{f: 0.99, n: 0}
	e.moveEnemy(enemy)
	if len(e.bullets) != 0 {
		t.Error("roll over the fire chance should not shoot")
	}
}
