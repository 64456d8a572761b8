package components

import (
	"github.com/wandermere/verse/physics"
	"github.com/yohamta/donburi"
)

// AvatarData holds the physics body backing the local avatar and the
// capsule dimensions it was created with.
type AvatarData struct {
	Body   physics.ActorID
	Radius float64
	Height float64
	Mass   float64
}

var Avatar = donburi.NewComponentType[AvatarData]()
