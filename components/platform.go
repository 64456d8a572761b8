package components

import (
	"github.com/wandermere/verse/physics"
	"github.com/yohamta/donburi"
)

// PlatformRideData tracks the non-static actor the avatar is standing on
// so the avatar can be carried by its movement between fixed steps.
type PlatformRideData struct {
	Support  physics.ActorID
	PrevPose physics.Pose // support pose sampled at the end of the last step
	Active   bool
}

var PlatformRide = donburi.NewComponentType[PlatformRideData]()
