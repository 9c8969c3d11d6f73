package midway

// Background scrolls two full-screen tiles downward. The leading tile is the
// lower one; the trailing tile sits directly above it. Whenever a tile's top
// edge passes below the field it is recycled to the top and the roles swap.
type Background struct {
	tiles     [2]*Entity
	speed     float64
	height    float64
	threshold float64
}

// NewBackground spawns the two tiles into w, stacked with no seam.
func NewBackground(w *World, width, height, speed, threshold float64, asset string) *Background {
	bg := &Background{speed: speed, height: height, threshold: threshold}
	for i := range bg.tiles {
		bg.tiles[i] = w.Spawn(KindBackground, Entity{
			X:     width / 2,
			Y:     height/2 + float64(i)*height,
			W:     width,
			H:     height,
			Asset: asset,
		})
	}
	return bg
}

// Tiles returns the leading and the trailing tile.
func (bg *Background) Tiles() (leading, trailing *Entity) {
	a, b := bg.tiles[0], bg.tiles[1]
	if a.Bottom() <= b.Bottom() {
		return a, b
	}
	return b, a
}

// Seam returns trailing.bottom - leading.top. Zero means the tiles are flush,
// positive values are a visible gap, negative values an overlap.
func (bg *Background) Seam() float64 {
	leading, trailing := bg.Tiles()
	return trailing.Bottom() - leading.Top()
}

// Advance scrolls both tiles by one tick, recycles a tile that left the
// field and closes any gap the recycle opened.
func (bg *Background) Advance() {
	for _, t := range bg.tiles {
		t.Y -= bg.speed
	}
	for _, t := range bg.tiles {
		if t.Top() <= 0 {
			t.SetBottom(bg.height)
		}
	}

	leading, trailing := bg.Tiles()
	if gap := trailing.Bottom() - leading.Top(); gap > 0 && gap < bg.threshold {
		trailing.SetBottom(leading.Top())
	}
}
