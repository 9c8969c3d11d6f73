package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/midway/internal/core"
)

// KeyMapper translates Bubble Tea key messages to symbolic keys.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	bindings map[string]core.Key
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{bindings: map[string]core.Key{
		"w": core.KeyUp, "up": core.KeyUp,
		"s": core.KeyDown, "down": core.KeyDown,
		"a": core.KeyLeft, "left": core.KeyLeft,
		"d": core.KeyRight, "right": core.KeyRight,
		"j": core.KeyFire, "f": core.KeyFire,
		" ":     core.KeyConfirmPrimary,
		"enter": core.KeyConfirmSecondary,
		"b":     core.KeyBack, "esc": core.KeyBack,
		"q": core.KeyQuit, "ctrl+c": core.KeyQuit,
	}}
}

// MapKey returns the key bound to msg, or KeyNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Key {
	return km.bindings[msg.String()]
}

// isHeld reports keys that steer the aircraft. The rest are taps.
func isHeld(k core.Key) bool {
	switch k {
	case core.KeyUp, core.KeyDown, core.KeyLeft, core.KeyRight:
		return true
	}
	return false
}

// HoldTracker synthesizes key-up events for terminals, which only report
// presses and autorepeat. A steering key stays down until no repeat arrives
// within its hold window.
type HoldTracker struct {
	initial int // ticks a fresh press is held, covering the autorepeat delay
	repeat  int // ticks each repeat extends the hold
	left    map[core.Key]int
}

// NewHoldTracker creates a tracker; windows are given in ticks.
func NewHoldTracker(initial, repeat int) *HoldTracker {
	return &HoldTracker{
		initial: max(initial, 1),
		repeat:  max(repeat, 1),
		left:    make(map[core.Key]int),
	}
}

// HoldTrackerFor sizes the hold windows for a tick rate.
func HoldTrackerFor(tickRate int) *HoldTracker {
	if tickRate <= 0 {
		tickRate = 60
	}
	return NewHoldTracker(tickRate/2, tickRate/10)
}

// Press records a terminal key press into frame.
func (h *HoldTracker) Press(k core.Key, frame *core.InputFrame) {
	if k == core.KeyNone {
		return
	}
	if !isHeld(k) {
		frame.Press(k)
		frame.Release(k)
		return
	}
	if _, down := h.left[k]; down {
		h.left[k] = max(h.left[k], h.repeat)
		return
	}
	// Opposite directions do not overlap.
	if o := opposite(k); o != core.KeyNone {
		if _, down := h.left[o]; down {
			delete(h.left, o)
			frame.Release(o)
		}
	}
	h.left[k] = h.initial
	frame.Press(k)
}

// Tick ages held keys and appends releases for the expired ones.
func (h *HoldTracker) Tick(frame *core.InputFrame) {
	for _, k := range []core.Key{core.KeyUp, core.KeyDown, core.KeyLeft, core.KeyRight} {
		n, down := h.left[k]
		if !down {
			continue
		}
		if n <= 1 {
			delete(h.left, k)
			frame.Release(k)
			continue
		}
		h.left[k] = n - 1
	}
}

// Held reports whether k is currently considered down.
func (h *HoldTracker) Held(k core.Key) bool {
	_, down := h.left[k]
	return down
}

// Reset forgets every held key.
func (h *HoldTracker) Reset() {
	clear(h.left)
}

func opposite(k core.Key) core.Key {
	switch k {
	case core.KeyUp:
		return core.KeyDown
	case core.KeyDown:
		return core.KeyUp
	case core.KeyLeft:
		return core.KeyRight
	case core.KeyRight:
		return core.KeyLeft
	}
	return core.KeyNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
