package midway

import "testing"

func TestWorldSpawnOrderAndCull(t *testing.T) {
	w := NewWorld()
	a := w.Spawn(KindEnemy, Entity{X: 1, W: 2, H: 2})
	b := w.Spawn(KindBullet, Entity{X: 2, W: 2, H: 2})
	c := w.Spawn(KindEnemy, Entity{X: 3, W: 2, H: 2})

	if a.ID >= b.ID || b.ID >= c.ID {
		t.Errorf("IDs not increasing: %d, %d, %d", a.ID, b.ID, c.ID)
	}
	if got := w.Count(KindEnemy); got != 2 {
		t.Errorf("Count(enemy) = %d, expected 2", got)
	}

	a.Kill()
	w.CullDead()

	if got := w.Len(); got != 2 {
		t.Errorf("Len() after cull = %d, expected 2", got)
	}
	view := w.View(KindEnemy)
	if len(view) != 1 || view[0].ID != c.ID {
		t.Errorf("View(enemy) = %+v, expected only #%d", view, c.ID)
	}
	if _, ok := w.checkCulled(); !ok {
		t.Error("dead entity survived CullDead")
	}
}

func TestWorldForEachAliveSkipsKilled(t *testing.T) {
	w := NewWorld()
	for i := range 4 {
		w.Spawn(KindEnemy, Entity{X: float64(i), W: 1, H: 1})
	}

	// Killing the next entity from inside the callback hides it from the rest
	// of the iteration.
	var seen []float64
	list := w.byKind[KindEnemy]
	w.ForEachAlive(KindEnemy, func(e *Entity) {
		seen = append(seen, e.X)
		if e.X == 1 {
			list[2].Kill()
		}
	})
	if len(seen) != 3 || seen[2] != 3 {
		t.Errorf("ForEachAlive visited %v, expected [0 1 3]", seen)
	}
}

func TestWorldViewIsACopy(t *testing.T) {
	w := NewWorld()
	e := w.Spawn(KindPlayer, Entity{X: 10, W: 1, H: 1})

	view := w.View(KindPlayer)
	view[0].X = 99

	if e.X != 10 {
		t.Errorf("mutating a view changed the entity: X = %v", e.X)
	}
}

func TestWorldReset(t *testing.T) {
	w := NewWorld()
	w.Spawn(KindEnemy, Entity{W: 1, H: 1})
	w.Spawn(KindCloud, Entity{W: 1, H: 1})
	w.Reset()

	if w.Len() != 0 || w.Count(KindEnemy) != 0 || w.Count(KindCloud) != 0 {
		t.Error("Reset() left entities behind")
	}
	if e := w.Spawn(KindEnemy, Entity{W: 1, H: 1}); e.ID != 1 {
		t.Errorf("first ID after Reset() = %d, expected 1", e.ID)
	}
}

func TestKillIsIdempotent(t *testing.T) {
	e := &Entity{Alive: true}
	if !e.Kill() {
		t.Error("first Kill() = false, expected true")
	}
	if e.Kill() {
		t.Error("second Kill() = true, expected false")
	}
}

func TestOverlapsSymmetricAndIgnoresDead(t *testing.T) {
	a := &Entity{X: 10, Y: 10, W: 10, H: 10, Alive: true}
	b := &Entity{X: 15, Y: 12, W: 10, H: 10, Alive: true}

	if !a.Overlaps(b) || !b.Overlaps(a) {
		t.Error("overlapping entities not detected in both directions")
	}

	b.Kill()
	if a.Overlaps(b) || b.Overlaps(a) {
		t.Error("dead entity still collides")
	}

	flat := &Entity{X: 10, Y: 10, W: 0, H: 10, Alive: true}
	if a.Overlaps(flat) {
		t.Error("zero-width entity collides")
	}
}

func TestMotionRules(t *testing.T) {
	b := Bounds{W: 100, H: 200, MinBottom: 20, HostileScale: 1}
	rules := DefaultMotion()

	tests := []struct {
		name  string
		e     Entity
		ticks int
		alive bool
		wantY float64
	}{
		{"enemy falls", Entity{Kind: KindEnemy, Y: 100, DY: -5, H: 10}, 2, true, 90},
		{"enemy leaves bottom", Entity{Kind: KindEnemy, Y: 0, DY: -5, H: 10}, 1, false, -5},
		{"cloud leaves bottom", Entity{Kind: KindCloud, Y: -2, DY: -2, H: 8}, 1, false, -4},
		{"bullet rises", Entity{Kind: KindBullet, Y: 100, DY: 20, H: 10}, 1, true, 120},
		{"bullet leaves top", Entity{Kind: KindBullet, Y: 190, DY: 20, H: 10}, 1, false, 210},
		{"player clamped above hud", Entity{Kind: KindPlayer, Y: 26, DY: -5, H: 10}, 1, true, 25},
		{"player clamped below top", Entity{Kind: KindPlayer, Y: 190, DY: 5, H: 10}, 1, true, 194},
		{"coin wraps", Entity{Kind: KindCoin, Y: 1, DY: -4, H: 4}, 1, true, 202},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tt.e
			e.Alive = true
			e.W = 10
			e.X = 50
			for range tt.ticks {
				rules[e.Kind](&e, b)
			}
			if e.Alive != tt.alive {
				t.Errorf("Alive = %v, expected %v", e.Alive, tt.alive)
			}
			if e.Y != tt.wantY {
				t.Errorf("Y = %v, expected %v", e.Y, tt.wantY)
			}
		})
	}
}

func TestPlayerClampedHorizontally(t *testing.T) {
	b := Bounds{W: 100, H: 200, MinBottom: 0}
	p := Entity{Kind: KindPlayer, X: 2, Y: 100, DX: -5, W: 10, H: 10, Alive: true}
	movePlayer(&p, b)
	if p.Left() != 0 {
		t.Errorf("Left() = %v, expected 0", p.Left())
	}

	p.X, p.DX = 90, 5
	movePlayer(&p, b)
	if p.Right() != 99 {
		t.Errorf("Right() = %v, expected 99", p.Right())
	}
}

func TestHostileScale(t *testing.T) {
	e := Entity{Kind: KindRedFighter, X: 0, Y: 100, DX: 1, DY: -2, W: 4, H: 4, Alive: true}
	moveHostile(&e, Bounds{W: 100, H: 200, HostileScale: 1.5})
	if e.X != 1.5 || e.Y != 97 {
		t.Errorf("position = (%v, %v), expected (1.5, 97)", e.X, e.Y)
	}
}

func TestExplosionRunsOutOfFrames(t *testing.T) {
	e := Entity{Kind: KindExplosion, FrameCount: 16, FrameInterval: 1, Alive: true}
	ticks := 0
	for e.Alive && ticks < 100 {
		animateOnce(&e, Bounds{})
		ticks++
	}
	if ticks != 16 {
		t.Errorf("explosion lasted %d ticks, expected 16", ticks)
	}
}
