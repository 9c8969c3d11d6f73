package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/midway/internal/core"
)

type stubGame struct {
	id, title string
}

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return g.title }
func (g stubGame) Description() string { return "stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen) {}
func (g stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return stubGame{"zz_stub", "Stub"} })

	if !Exists("zz_stub") {
		t.Fatal("Exists() = false after Register()")
	}
	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.Title() != "Stub" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Stub")
	}

	var found *GameInfo
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = &info
		}
	}
	if found == nil {
		t.Fatal("List() is missing the registered game")
	}
	if found.Description != "stub zz_stub" {
		t.Errorf("Description = %q, expected %q", found.Description, "stub zz_stub")
	}
}

func TestListSorted(t *testing.T) {
	Register("yy_b", func() Game { return stubGame{"yy_b", "B"} })
	Register("yy_a", func() Game { return stubGame{"yy_a", "A"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_game")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, expected ErrUnknownGame", err)
	}
	if Exists("no_such_game") {
		t.Error("Exists() = true for an unknown id")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("xx_dup", func() Game { return stubGame{"xx_dup", "Dup"} })

	defer func() {
		if recover() == nil {
			t.Error("second Register() did not panic")
		}
	}()
	Register("xx_dup", func() Game { return stubGame{"xx_dup", "Dup"} })
}
