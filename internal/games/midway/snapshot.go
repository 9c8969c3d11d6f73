package midway

import "math"

// Snapshot captures the simulation state for determinism checks and replays.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick   uint64
	State  int
	Score  int
	Health int

	Grazed           bool
	PowerUpDropped   bool
	PowerUpCollected bool
	SpreadShot       bool

	// Entities in spawn order, 5 ints each: Kind, X, Y, DX, DY (positions in
	// hundredths of a world unit).
	EntityCount int
	EntityData  []int
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() Snapshot {
	data := make([]int, 0, e.world.Len()*5)
	e.world.Visit(func(ent Entity) {
		data = append(data,
			int(ent.Kind),
			fixed(ent.X), fixed(ent.Y),
			fixed(ent.DX), fixed(ent.DY),
		)
	})

	s := e.session
	health := 0
	if s.Player != nil {
		health = s.Player.Health
	}
	return Snapshot{
		Tick:             uint64(e.tick), //#nosec G115 -- tick count is always positive
		State:            int(e.flow.State()),
		Score:            s.Score,
		Health:           health,
		Grazed:           s.Grazed,
		PowerUpDropped:   s.PowerUpDropped,
		PowerUpCollected: s.PowerUpCollected,
		SpreadShot:       s.SpreadShot,
		EntityCount:      len(data) / 5,
		EntityData:       data,
	}
}

func fixed(v float64) int {
	return int(math.Round(v * 100))
}

func flag(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Health)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EntityCount) //#nosec G115 -- hash computation
	h = h*31 + flag(snap.Grazed)
	h = h*31 + flag(snap.PowerUpDropped)
	h = h*31 + flag(snap.PowerUpCollected)
	h = h*31 + flag(snap.SpreadShot)

	for _, v := range snap.EntityData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
