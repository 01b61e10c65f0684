package game

// TileType represents the type of a cell on the game grid.
// Values match the integer codes used by level files and the level generator.
type TileType int

const (
	Empty TileType = 0
	Brick TileType = 1 // Destructible, blocks tanks and bullets
	Steel TileType = 2 // Indestructible, blocks tanks and bullets
	Water TileType = 3 // Blocks tanks, bullets pass over
	Grass TileType = 4 // Visual only
	Base  TileType = 9 // The defended objective
)

// Direction represents a facing/movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four cardinal directions in a stable order.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}

// delta returns the unit vector for the direction.
func (d Direction) delta() (dx, dy float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Role distinguishes the player tank from enemy tanks.
type Role int

const (
	RolePlayer Role = iota
	RoleEnemy
)

// Entity is the positioned bounding box shared by tanks and bullets.
// X and Y are the top-left corner in pixels.
type Entity struct {
	ID        string    `json:"id"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	W         float64   `json:"w"`
	H         float64   `json:"h"`
	Dir       Direction `json:"dir"`
	Speed     float64   `json:"speed"`
	Destroyed bool      `json:"destroyed"`
}

// Rect returns the entity's bounding box.
func (e Entity) Rect() Rect {
	return Rect{X: e.X, Y: e.Y, W: e.W, H: e.H}
}

// Tank is a player or enemy tank.
type Tank struct {
	Entity
	Role     Role   `json:"role"`
	Cooldown int    `json:"cooldown"` // Ticks until the next shot is allowed
	Health   int    `json:"health"`
	Color    string `json:"color"`
}

// Bullet is a projectile in flight.
type Bullet struct {
	Entity
	OwnerID string `json:"owner_id"` // Weak reference; the owner may already be gone
}

// Status represents the current session phase.
type Status int

const (
	StatusRunning Status = iota
	StatusOver
)

// Palette colors shared by renderers.
const (
	ColorPlayer     = "#fbbf24"
	ColorEnemyBasic = "#ef4444"
	ColorEnemyFast  = "#3b82f6"
)

// Point is a pixel position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Snapshot is a deep copy of the simulation state handed to renderers.
type Snapshot struct {
	Grid          Grid     `json:"grid"`
	Player        Tank     `json:"player"`
	Enemies       []Tank   `json:"enemies"`
	Bullets       []Bullet `json:"bullets"`
	Score         int      `json:"score"`
	Tick          int      `json:"tick"`
	BaseDestroyed bool     `json:"base_destroyed"`
	Status        Status   `json:"status"`
	Won           bool     `json:"won"`
	TileSize      int      `json:"tile_size"`
}
