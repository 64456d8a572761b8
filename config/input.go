package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical input action.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionRun
	ActionJump
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key bindings for an action.
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings.
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration.
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveForward: {Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp}},
			ActionMoveBack:    {Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown}},
			ActionMoveLeft:    {Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}},
			ActionMoveRight:   {Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight}},
			ActionRun:         {Keys: []ebiten.Key{ebiten.KeyShift}},
			ActionJump:        {Keys: []ebiten.Key{ebiten.KeySpace}},
		},
	}
}
