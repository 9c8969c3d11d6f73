package midway

import "github.com/vovakirdan/midway/internal/core"

// Kind tags an entity with its behaviour.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindMiniBoss
	KindRedFighter
	KindBullet
	KindPowerUp
	KindExplosion
	KindCloud
	KindBackground
	KindCoin

	kindCount
)

var kindNames = [kindCount]string{
	"player", "enemy", "miniboss", "redfighter", "bullet",
	"powerup", "explosion", "cloud", "background", "coin",
}

// String returns the kind's name.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// Hostile reports whether the kind damages the player on contact.
func (k Kind) Hostile() bool {
	return k == KindEnemy || k == KindRedFighter
}

// Entity is a simulated actor. Position is the center of the footprint in
// world space with the origin at the bottom-left of the play field.
type Entity struct {
	ID    int
	Kind  Kind
	X, Y  float64
	DX    float64
	DY    float64
	W, H  float64
	Alive bool

	Asset         string
	Frame         int // Current animation frame
	FrameCount    int // Frames in the sequence; 0 for static sprites
	FrameInterval int // Ticks per frame
	frameTicks    int

	// Loop restarts the sequence when it ends; otherwise the entity dies.
	Loop bool

	// Health is meaningful for the player only.
	Health int
}

// Box returns the bounding box for the current position.
func (e *Entity) Box() core.Box {
	return core.BoxAround(e.X, e.Y, e.W, e.H)
}

// Kill marks the entity dead and reports whether it was alive.
// Killing a dead entity is a no-op.
func (e *Entity) Kill() bool {
	if !e.Alive {
		return false
	}
	e.Alive = false
	return true
}

// Overlaps reports whether two live entities' boxes overlap.
func (e *Entity) Overlaps(o *Entity) bool {
	if !e.Alive || !o.Alive {
		return false
	}
	return e.Box().Overlaps(o.Box())
}

// Top returns the upper edge.
func (e *Entity) Top() float64 { return e.Y + e.H/2 }

// Bottom returns the lower edge.
func (e *Entity) Bottom() float64 { return e.Y - e.H/2 }

// Left returns the left edge.
func (e *Entity) Left() float64 { return e.X - e.W/2 }

// Right returns the right edge.
func (e *Entity) Right() float64 { return e.X + e.W/2 }

// SetBottom moves the entity so its lower edge is at y.
func (e *Entity) SetBottom(y float64) { e.Y = y + e.H/2 }

// SetTop moves the entity so its upper edge is at y.
func (e *Entity) SetTop(y float64) { e.Y = y - e.H/2 }

// animate advances the frame counter. It returns false when a non-looping
// sequence has run out of frames.
func (e *Entity) animate() bool {
	if e.FrameCount <= 1 || e.FrameInterval <= 0 {
		return true
	}
	e.frameTicks++
	if e.frameTicks < e.FrameInterval {
		return true
	}
	e.frameTicks = 0
	e.Frame++
	if e.Frame >= e.FrameCount {
		if !e.Loop {
			e.Frame = e.FrameCount - 1
			return false
		}
		e.Frame = 0
	}
	return true
}
