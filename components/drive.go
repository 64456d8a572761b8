package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/wandermere/verse/physics"
	"github.com/yohamta/donburi"
)

// DriveData moves a kinematic actor along a fixed axis using a tween
// sequence. The drive system repositions the actor every fixed step and
// restarts the sequence when it completes.
type DriveData struct {
	Actor  physics.ActorID
	Seq    *gween.Sequence
	Origin mgl64.Vec3 // pose at sequence value zero
	Axis   mgl64.Vec3 // unit direction the tween value displaces along
}

var Drive = donburi.NewComponentType[DriveData]()
