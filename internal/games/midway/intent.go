package midway

import "github.com/vovakirdan/midway/internal/core"

// Intent is what the player wants the aircraft to do this tick.
type Intent struct {
	DX, DY int // Axis direction: -1, 0 or 1
	Fire   int // Fire presses since the last tick
}

// IntentMapper turns key edges into a persistent movement intent.
// A release only clears an axis when it matches the key driving it, so
// rolling from Left to Right without lifting keeps moving right.
type IntentMapper struct {
	xKey core.Key
	yKey core.Key
	cur  Intent
}

// Apply folds one key event into the intent.
func (m *IntentMapper) Apply(ev core.KeyEvent) {
	if ev.Down {
		switch ev.Key {
		case core.KeyLeft:
			m.xKey, m.cur.DX = ev.Key, -1
		case core.KeyRight:
			m.xKey, m.cur.DX = ev.Key, 1
		case core.KeyUp:
			m.yKey, m.cur.DY = ev.Key, 1
		case core.KeyDown:
			m.yKey, m.cur.DY = ev.Key, -1
		case core.KeyFire:
			m.cur.Fire++
		}
		return
	}

	switch ev.Key {
	case core.KeyLeft, core.KeyRight:
		if ev.Key == m.xKey {
			m.xKey, m.cur.DX = core.KeyNone, 0
		}
	case core.KeyUp, core.KeyDown:
		if ev.Key == m.yKey {
			m.yKey, m.cur.DY = core.KeyNone, 0
		}
	}
}

// Take returns the current intent and consumes pending fire presses.
func (m *IntentMapper) Take() Intent {
	in := m.cur
	m.cur.Fire = 0
	return in
}

// Reset clears held keys and pending presses.
func (m *IntentMapper) Reset() {
	*m = IntentMapper{}
}
