package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Press(KeyUp)
	f.Release(KeyUp)
	f.Press(KeyFire)

	if len(f.Events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(f.Events))
	}
	if f.Events[1] != (KeyEvent{Key: KeyUp, Down: false}) {
		t.Errorf("second event = %+v, expected Up release", f.Events[1])
	}
	if !f.Pressed(KeyUp) || !f.Pressed(KeyFire) {
		t.Error("Pressed should report keys that went down this frame")
	}
	if f.Pressed(KeyDown) {
		t.Error("Pressed(Down) should be false")
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Press(KeyConfirmPrimary)

	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
	if !clone.Pressed(KeyConfirmPrimary) {
		t.Error("Clone should be independent of the original")
	}
}

func TestKeyString(t *testing.T) {
	if KeyConfirmSecondary.String() != "ConfirmSecondary" {
		t.Errorf("String() = %q", KeyConfirmSecondary.String())
	}
	if Key(99).String() != "Unknown" {
		t.Errorf("String() for unknown key = %q", Key(99).String())
	}
}
