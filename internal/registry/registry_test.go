package registry

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/borker-run/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                                          { return g.id }
func (g stubGame) Title() string                                       { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)                            {}
func (g stubGame) Step(core.InputFrame, time.Duration) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                                 {}
func (g stubGame) State() core.GameState                               { return core.GameState{} }
func (g stubGame) HUD() core.HUD                                       { return core.HUD{} }

func TestRegisterCreate(t *testing.T) {
	Register("stub-a", func() Game { return stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("Exists() = false after Register()")
	}

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("Create().ID() = %q, expected %q", g.ID(), "stub-a")
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub-a" {
			found = true
			if info.Title != "Stub stub-a" {
				t.Errorf("List() title = %q, expected %q", info.Title, "Stub stub-a")
			}
		}
	}
	if !found {
		t.Error("List() does not contain registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-game")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, expected ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return stubGame{id: "stub-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("Register() with duplicate ID did not panic")
		}
	}()
	Register("stub-dup", func() Game { return stubGame{id: "stub-dup"} })
}
