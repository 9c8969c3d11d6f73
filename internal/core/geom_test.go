package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent vertical (no overlap)", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"zero width never intersects", NewRect(0, 0, 0, 10), NewRect(0, 0, 10, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping",
			a:        BoxAround(0, 0, 10, 10),
			b:        BoxAround(6, 6, 10, 10),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        BoxAround(0, 0, 10, 10),
			b:        BoxAround(20, 0, 10, 10),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        BoxAround(0, 0, 10, 10),
			b:        BoxAround(0, 20, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges",
			a:        Box{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10},
			b:        Box{MinX: 10, MinY: 0, MaxX: 20, MaxY: 10},
			expected: false,
		},
		{
			name:     "contained",
			a:        BoxAround(0, 0, 100, 100),
			b:        BoxAround(5, 5, 2, 2),
			expected: true,
		},
		{
			name:     "horizontal overlap only",
			a:        Box{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10},
			b:        Box{MinX: 5, MinY: 30, MaxX: 15, MaxY: 40},
			expected: false,
		},
		{
			name:     "degenerate zero width inside other",
			a:        Box{MinX: 5, MinY: 0, MaxX: 5, MaxY: 10},
			b:        BoxAround(5, 5, 10, 10),
			expected: false,
		},
		{
			name:     "degenerate point",
			a:        Box{MinX: 3, MinY: 3, MaxX: 3, MaxY: 3},
			b:        Box{MinX: 3, MinY: 3, MaxX: 3, MaxY: 3},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxAround(t *testing.T) {
	b := BoxAround(100, 50, 20, 10)

	if b.MinX != 90 || b.MaxX != 110 || b.MinY != 45 || b.MaxY != 55 {
		t.Errorf("BoxAround() = %+v", b)
	}
	if b.Width() != 20 || b.Height() != 10 {
		t.Errorf("size = %vx%v, expected 20x10", b.Width(), b.Height())
	}
	cx, cy := b.Center()
	if cx != 100 || cy != 50 {
		t.Errorf("Center() = (%v, %v), expected (100, 50)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := ClampF(-5.5, 0, 10); got != 0 {
		t.Errorf("ClampF(-5.5, 0, 10) = %f, expected 0", got)
	}
}
