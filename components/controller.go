package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/wandermere/verse/physics"
	"github.com/yohamta/donburi"
)

// ControllerData is the locomotion state machine for one avatar.
// Written by the locomotion system each fixed step, read by the
// velocity resolver, platform tracker and emitter.
type ControllerData struct {
	Grounded       bool
	GroundNormal   mgl64.Vec3
	GroundAngleDeg float64
	Slipping       bool // grounded on a slope past the walkable limit

	Jumped         bool // jump impulse applied, still within ground contact
	Jumping        bool // airborne due to a jump
	JustLeftGround bool // true only on the step ground contact was lost

	Falling   bool
	FallTimer float64 // seconds spent airborne since contact was lost

	Support     physics.ActorID // actor the ground sweep hit, if any
	SupportKind physics.ActorKind

	Combine physics.CombineMode // friction combine currently set on the body
}

var Controller = donburi.NewComponentType[ControllerData]()
