package systems

import (
	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	var current [cfg.ActionCount]bool
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	// Merge the left stick into the horizontal actions
	left, right := analogHorizontal(gamepadIDs)
	if left {
		current[cfg.ActionMoveLeft] = true
		gamepadUsed = true
	}
	if right {
		current[cfg.ActionMoveRight] = true
		gamepadUsed = true
	}

	method := input.LastInputMethod
	if gamepadUsed {
		method = components.InputGamepad
	} else if keyboardUsed {
		method = components.InputKeyboard
	}
	SetInput(input, current, method)
}

// SetInput swaps the frame buffers: current becomes previous, then the new
// snapshot is stored.
func SetInput(input *components.InputData, current [cfg.ActionCount]bool, method components.InputMethod) {
	input.Previous = input.Current
	input.Current = current
	input.LastInputMethod = method
}

func analogHorizontal(gamepads []ebiten.GamepadID) (left, right bool) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if h < -deadzone {
			left = true
		}
		if h > deadzone {
			right = true
		}
	}
	return
}

// HeldActions returns the actions down on the last polled frame.
func HeldActions(ecs *ecs.ECS) [cfg.ActionCount]bool {
	return getOrCreateInput(ecs).Current
}

// SeedInput marks held as down on both frames, so a key carried over from a
// previous scene reads as held rather than just pressed.
func SeedInput(ecs *ecs.ECS, held [cfg.ActionCount]bool) {
	input := getOrCreateInput(ecs)
	input.Previous = held
	input.Current = held
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
