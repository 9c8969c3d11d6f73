package core

// Key is a symbolic key, abstracted from physical key codes.
// Hosts translate device input into Keys; games never see raw key codes.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyFire
	KeyConfirmPrimary   // Space - start / restart
	KeyConfirmSecondary // Enter - instruction pages
	KeyBack             // B, Escape - leave the game (host-level)
	KeyQuit             // Q, Ctrl+C - exit (host-level)
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyFire:
		return "Fire"
	case KeyConfirmPrimary:
		return "ConfirmPrimary"
	case KeyConfirmSecondary:
		return "ConfirmSecondary"
	case KeyBack:
		return "Back"
	case KeyQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyEvent is one discrete key transition delivered by the host.
type KeyEvent struct {
	Key  Key
	Down bool // true for key-down, false for key-up
}

// InputFrame buffers the key events captured between two simulation ticks.
// Events keep their arrival order so a press and release inside the same
// frame are both observed.
type InputFrame struct {
	Events []KeyEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Press records a key-down event.
func (f *InputFrame) Press(k Key) {
	f.Events = append(f.Events, KeyEvent{Key: k, Down: true})
}

// Release records a key-up event.
func (f *InputFrame) Release(k Key) {
	f.Events = append(f.Events, KeyEvent{Key: k, Down: false})
}

// Pressed returns true if the key went down at least once this frame.
func (f InputFrame) Pressed(k Key) bool {
	for _, ev := range f.Events {
		if ev.Key == k && ev.Down {
			return true
		}
	}
	return false
}

// Empty reports whether no events were captured.
func (f InputFrame) Empty() bool {
	return len(f.Events) == 0
}

// Clear resets the frame for the next tick, keeping the backing array.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Events: make([]KeyEvent, len(f.Events))}
	copy(clone.Events, f.Events)
	return clone
}
