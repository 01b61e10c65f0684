package game

// Key names a physical input key.
type Key string

const (
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyW          Key = "w"
	KeyA          Key = "a"
	KeyS          Key = "s"
	KeyD          Key = "d"
	KeyFire       Key = " "
)

// directionKeys lists key aliases in priority order: UP > DOWN > LEFT > RIGHT.
var directionKeys = []struct {
	dir  Direction
	keys [2]Key
}{
	{DirUp, [2]Key{KeyArrowUp, KeyW}},
	{DirDown, [2]Key{KeyArrowDown, KeyS}},
	{DirLeft, [2]Key{KeyArrowLeft, KeyA}},
	{DirRight, [2]Key{KeyArrowRight, KeyD}},
}

// Input is the set of currently held keys. Platform input layers write it
// and the engine reads it once per tick, all on the host's frame goroutine.
type Input struct {
	held map[Key]bool
}

// NewInput returns an empty input state.
func NewInput() *Input {
	return &Input{held: make(map[Key]bool)}
}

// Press marks a key as held.
func (in *Input) Press(k Key) {
	in.held[k] = true
}

// Release marks a key as no longer held.
func (in *Input) Release(k Key) {
	delete(in.held, k)
}

// IsHeld reports whether a key is currently held.
func (in *Input) IsHeld(k Key) bool {
	return in.held[k]
}

// Clear releases every key.
func (in *Input) Clear() {
	for k := range in.held {
		delete(in.held, k)
	}
}

// Direction returns the single movement direction requested this tick.
// When several directions are held the highest priority one wins.
func (in *Input) Direction() (Direction, bool) {
	for _, dk := range directionKeys {
		if in.held[dk.keys[0]] || in.held[dk.keys[1]] {
			return dk.dir, true
		}
	}
	return 0, false
}

// Firing reports whether the fire key is held.
func (in *Input) Firing() bool {
	return in.held[KeyFire]
}

// DirectionKey returns the primary key for a direction.
func DirectionKey(d Direction) Key {
	for _, dk := range directionKeys {
		if dk.dir == d {
			return dk.keys[0]
		}
	}
	return ""
}
