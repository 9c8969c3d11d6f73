package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/midway/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapperBindings(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Key
	}{
		{runeKey('w'), core.KeyUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown},
		{runeKey('a'), core.KeyLeft},
		{runeKey('d'), core.KeyRight},
		{runeKey('j'), core.KeyFire},
		{tea.KeyMsg{Type: tea.KeySpace}, core.KeyConfirmPrimary},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.KeyConfirmSecondary},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.KeyBack},
		{runeKey('q'), core.KeyQuit},
		{runeKey('z'), core.KeyNone},
	}
	for _, tt := range tests {
		if got := km.MapKey(tt.msg); got != tt.want {
			t.Errorf("MapKey(%q) = %s, expected %s", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHoldTrackerTapKeys(t *testing.T) {
	h := NewHoldTracker(5, 2)
	var f core.InputFrame
	h.Press(core.KeyFire, &f)

	want := []core.KeyEvent{{Key: core.KeyFire, Down: true}, {Key: core.KeyFire, Down: false}}
	if len(f.Events) != 2 || f.Events[0] != want[0] || f.Events[1] != want[1] {
		t.Errorf("events = %v, expected %v", f.Events, want)
	}
	if h.Held(core.KeyFire) {
		t.Error("fire should not be held")
	}
}

func TestHoldTrackerSynthesizesRelease(t *testing.T) {
	h := NewHoldTracker(3, 2)
	var f core.InputFrame

	h.Press(core.KeyLeft, &f)
	if len(f.Events) != 1 || !f.Events[0].Down {
		t.Fatalf("events = %v, expected one press", f.Events)
	}
	f.Clear()

	h.Tick(&f)
	h.Tick(&f)
	if !h.Held(core.KeyLeft) || !f.Empty() {
		t.Fatal("released before the hold window elapsed")
	}
	h.Tick(&f)
	if h.Held(core.KeyLeft) {
		t.Error("still held after the window")
	}
	if len(f.Events) != 1 || f.Events[0] != (core.KeyEvent{Key: core.KeyLeft, Down: false}) {
		t.Errorf("events = %v, expected a Left release", f.Events)
	}
}

func TestHoldTrackerRepeatExtends(t *testing.T) {
	h := NewHoldTracker(2, 4)
	var f core.InputFrame

	h.Press(core.KeyUp, &f)
	h.Tick(&f)
	h.Press(core.KeyUp, &f) // autorepeat
	for range 3 {
		h.Tick(&f)
	}
	if !h.Held(core.KeyUp) {
		t.Error("repeat did not extend the hold")
	}
	presses := 0
	for _, ev := range f.Events {
		if ev.Down {
			presses++
		}
	}
	if presses != 1 {
		t.Errorf("presses = %d, autorepeat must not press again", presses)
	}
}

func TestHoldTrackerOppositeReleases(t *testing.T) {
	h := NewHoldTracker(10, 2)
	var f core.InputFrame

	h.Press(core.KeyLeft, &f)
	h.Press(core.KeyRight, &f)

	want := []core.KeyEvent{
		{Key: core.KeyLeft, Down: true},
		{Key: core.KeyLeft, Down: false},
		{Key: core.KeyRight, Down: true},
	}
	if len(f.Events) != len(want) {
		t.Fatalf("events = %v, expected %v", f.Events, want)
	}
	for i := range want {
		if f.Events[i] != want[i] {
			t.Errorf("event %d = %v, expected %v", i, f.Events[i], want[i])
		}
	}
}

func TestMenuActions(t *testing.T) {
	km := NewKeyMapper()
	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}); got != MenuActionScoreboard {
		t.Errorf("tab = %v, expected scoreboard", got)
	}
	if got := km.MapKeyToMenuAction(runeKey('k')); got != MenuActionUp {
		t.Errorf("k = %v, expected up", got)
	}
}
