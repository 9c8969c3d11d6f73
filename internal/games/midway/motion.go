package midway

// Bounds describes the play field seen by motion rules.
type Bounds struct {
	W, H      float64
	MinBottom float64 // Lowest allowed player bottom edge

	// HostileScale multiplies hostile velocities (difficulty).
	HostileScale float64
}

// MotionRule advances one entity by one tick.
type MotionRule func(e *Entity, b Bounds)

// MotionTable maps each kind to its rule. A nil rule means the kind is
// moved elsewhere (background tiles, power-up) or not at all.
type MotionTable [kindCount]MotionRule

// DefaultMotion returns the rules for every moving kind.
func DefaultMotion() MotionTable {
	var t MotionTable
	t[KindPlayer] = movePlayer
	t[KindEnemy] = moveHostile
	t[KindRedFighter] = moveHostile
	t[KindCloud] = moveFalling
	t[KindBullet] = moveBullet
	t[KindMiniBoss] = moveMiniBoss
	t[KindExplosion] = animateOnce
	t[KindCoin] = moveCoin
	return t
}

// movePlayer applies the intent velocity and keeps the aircraft on screen.
func movePlayer(e *Entity, b Bounds) {
	e.X += e.DX
	e.Y += e.DY
	clampPlayer(e, b)
	e.animate()
}

func clampPlayer(e *Entity, b Bounds) {
	if e.Left() < 0 {
		e.X = e.W / 2
	} else if e.Right() > b.W-1 {
		e.X = b.W - 1 - e.W/2
	}
	if e.Bottom() < b.MinBottom {
		e.SetBottom(b.MinBottom)
	} else if e.Top() > b.H-1 {
		e.SetTop(b.H - 1)
	}
}

// moveHostile falls until the entity leaves through the bottom edge.
func moveHostile(e *Entity, b Bounds) {
	scale := b.HostileScale
	if scale <= 0 {
		scale = 1
	}
	e.X += e.DX * scale
	e.Y += e.DY * scale
	e.animate()
	if e.Top() <= 0 {
		e.Kill()
	}
}

// moveFalling is a constant-velocity fall for decorations.
func moveFalling(e *Entity, _ Bounds) {
	e.X += e.DX
	e.Y += e.DY
	if e.Top() <= 0 {
		e.Kill()
	}
}

// moveBullet rises until the bullet leaves through the top edge.
func moveBullet(e *Entity, b Bounds) {
	e.X += e.DX
	e.Y += e.DY
	if e.Bottom() > b.H {
		e.Kill()
	}
}

// moveMiniBoss follows its scripted diagonal and leaves the field
// unharmed once past the left or bottom edge.
func moveMiniBoss(e *Entity, _ Bounds) {
	e.X += e.DX
	e.Y += e.DY
	e.animate()
	if e.Right() < 0 || e.Top() < 0 {
		e.Kill()
	}
}

// animateOnce plays a sequence once; static sprites last a single tick.
func animateOnce(e *Entity, _ Bounds) {
	if e.FrameCount <= 1 || !e.animate() {
		e.Kill()
	}
}

// moveCoin drifts down and wraps back to the top instead of leaving, so
// the collectible count only shrinks through pickups.
func moveCoin(e *Entity, b Bounds) {
	if e.DY == 0 {
		return
	}
	e.Y += e.DY
	if e.Top() <= 0 {
		e.SetBottom(b.H)
	}
}
