package components

import (
	cfg "github.com/wandermere/verse/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all
// actions, plus the raw look and scroll deltas accumulated this frame.
// JustPressed edges are computed by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	LookDX, LookDY float64 // pointer delta this frame, pixels
	ScrollDY       float64 // wheel delta this frame

	PointerLocked bool
	PrevCursorX   int
	PrevCursorY   int
}

var Input = donburi.NewComponentType[InputData]()

// Pressed reports whether the action is currently held.
func (d *InputData) Pressed(a cfg.ActionID) bool {
	return d.Current[a]
}

// JustPressed reports whether the action went down this frame.
func (d *InputData) JustPressed(a cfg.ActionID) bool {
	return d.Current[a] && !d.Previous[a]
}
