package systems

import (
	"github.com/automoto/isodroid/components"
	cfg "github.com/automoto/isodroid/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdateNavigation in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	input.CursorX, input.CursorY = ebiten.CursorPosition()

	x, y, released := pointerReleased()
	setTap(ecs, input, x, y, released)
}

// pointerReleased reports a left click or touch that ended this frame. A
// tap lands where it was lifted.
func pointerReleased() (x, y int, ok bool) {
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		return x, y, true
	}

	touchIDs = inpututil.AppendJustReleasedTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		x, y = inpututil.TouchPositionInPreviousTick(touchIDs[0])
		return x, y, true
	}
	return 0, 0, false
}

// setTap records a pointer release in screen pixels and in isometric space.
func setTap(ecs *ecs.ECS, input *components.InputData, x, y int, released bool) {
	input.Tapped = false
	if !released {
		return
	}

	viewEntry, ok := components.View.First(ecs.World)
	if !ok {
		return
	}
	view := components.View.Get(viewEntry)

	input.Tapped = true
	input.TapX, input.TapY = x, y
	input.TapIso = view.ScreenToIso(float64(x), float64(y))
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
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
