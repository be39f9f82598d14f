package systems

import (
	"testing"

	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestGetActionEdges(t *testing.T) {
	input := &components.InputData{}
	frames := []struct {
		jump                    bool
		pressed, just, released bool
	}{
		{jump: true, pressed: true, just: true},
		{jump: true, pressed: true},
		{jump: false, released: true},
		{jump: false},
		{jump: true, pressed: true, just: true},
	}

	for i, f := range frames {
		var current [cfg.ActionCount]bool
		current[cfg.ActionJump] = f.jump
		SetInput(input, current, components.InputKeyboard)

		got := GetAction(input, cfg.ActionJump)
		want := components.ActionState{Pressed: f.pressed, JustPressed: f.just, JustReleased: f.released}
		if got != want {
			t.Errorf("frame %d: got %+v, want %+v", i, got, want)
		}
	}
}

func TestSetInputKeepsMethodPerCall(t *testing.T) {
	input := &components.InputData{}
	SetInput(input, [cfg.ActionCount]bool{}, components.InputGamepad)
	if input.LastInputMethod != components.InputGamepad {
		t.Fatalf("method = %v, want gamepad", input.LastInputMethod)
	}
}

func TestSeedInputCarriesHeldKeys(t *testing.T) {
	old := ecs.NewECS(donburi.NewWorld())
	var down [cfg.ActionCount]bool
	down[cfg.ActionRestart] = true
	SetInput(getOrCreateInput(old), down, components.InputKeyboard)

	e := ecs.NewECS(donburi.NewWorld())
	SeedInput(e, HeldActions(old))
	input := getOrCreateInput(e)
	SetInput(input, down, components.InputKeyboard)

	if a := GetAction(input, cfg.ActionRestart); !a.Pressed || a.JustPressed {
		t.Errorf("carried key = %+v, want held without a new press", a)
	}
}
