package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/wandermere/verse/components"
	cfg "github.com/wandermere/verse/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls raw input into the InputData snapshot once per render
// frame. Must run before the binder; fixed-step systems never touch raw
// input, only the snapshot and the intent derived from it.
func UpdateInput(e *ecs.ECS) {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	in := components.Input.Get(entry)

	// Swap buffers: current becomes previous, then zero out current
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				in.Current[actionID] = true
			}
		}
	}

	// Look-lock is held right mouse button. Pointer deltas only count while
	// the lock was already engaged last frame, so engaging it never jolts
	// the camera.
	locked := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	x, y := ebiten.CursorPosition()

	if locked && in.PointerLocked {
		in.LookDX = float64(x - in.PrevCursorX)
		in.LookDY = float64(y - in.PrevCursorY)
	} else {
		in.LookDX = 0
		in.LookDY = 0
	}

	if locked != in.PointerLocked {
		if locked {
			ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		}
	}
	in.PointerLocked = locked
	in.PrevCursorX, in.PrevCursorY = x, y

	_, wheelY := ebiten.Wheel()
	in.ScrollDY = wheelY
}
