package midway

// World owns every entity of a play-through. The master list holds all
// entities in spawn order; per-kind lists share the same pointers and are
// used for collision pairing.
type World struct {
	all    []*Entity
	byKind [kindCount][]*Entity
	nextID int
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{all: make([]*Entity, 0, 128)}
}

// Spawn adds a live copy of proto and returns a handle to it.
func (w *World) Spawn(kind Kind, proto Entity) *Entity {
	w.nextID++
	e := proto
	e.ID = w.nextID
	e.Kind = kind
	e.Alive = true
	ent := &e
	w.all = append(w.all, ent)
	w.byKind[kind] = append(w.byKind[kind], ent)
	return ent
}

// ForEachAlive calls fn for every live entity of kind in spawn order.
// Entities killed by fn are skipped by later iterations.
func (w *World) ForEachAlive(kind Kind, fn func(e *Entity)) {
	for _, e := range w.byKind[kind] {
		if e.Alive {
			fn(e)
		}
	}
}

// First returns the first live entity of kind, or nil.
func (w *World) First(kind Kind) *Entity {
	for _, e := range w.byKind[kind] {
		if e.Alive {
			return e
		}
	}
	return nil
}

// Count returns the number of live entities of kind.
func (w *World) Count(kind Kind) int {
	n := 0
	for _, e := range w.byKind[kind] {
		if e.Alive {
			n++
		}
	}
	return n
}

// Len returns the number of entities held, dead ones included.
func (w *World) Len() int {
	return len(w.all)
}

// CullDead drops every dead entity from all lists, keeping spawn order.
func (w *World) CullDead() {
	w.all = compact(w.all)
	for k := range w.byKind {
		w.byKind[k] = compact(w.byKind[k])
	}
}

// Reset removes every entity.
func (w *World) Reset() {
	clear(w.all)
	w.all = w.all[:0]
	for k := range w.byKind {
		clear(w.byKind[k])
		w.byKind[k] = w.byKind[k][:0]
	}
	w.nextID = 0
}

// AdvanceAll applies the motion rule for each live entity's kind.
// Kinds without a rule do not move.
func (w *World) AdvanceAll(rules MotionTable, b Bounds) {
	for _, e := range w.all {
		if !e.Alive {
			continue
		}
		if rule := rules[e.Kind]; rule != nil {
			rule(e, b)
		}
	}
}

// View returns value copies of every live entity of kind, in spawn order.
func (w *World) View(kind Kind) []Entity {
	out := make([]Entity, 0, len(w.byKind[kind]))
	for _, e := range w.byKind[kind] {
		if e.Alive {
			out = append(out, *e)
		}
	}
	return out
}

// Visit calls fn with a copy of every live entity in spawn order.
func (w *World) Visit(fn func(e Entity)) {
	for _, e := range w.all {
		if e.Alive {
			fn(*e)
		}
	}
}

// checkCulled reports the first dead entity still held, if any.
func (w *World) checkCulled() (Entity, bool) {
	for _, e := range w.all {
		if !e.Alive {
			return *e, false
		}
	}
	return Entity{}, true
}

// compact removes dead entries in place.
func compact(list []*Entity) []*Entity {
	n := 0
	for _, e := range list {
		if e.Alive {
			list[n] = e
			n++
		}
	}
	clear(list[n:])
	return list[:n]
}
