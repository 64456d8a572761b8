package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// PoseData is the presentation transform of an entity. Position mirrors the
// physics body after each step; Rotation is the visual facing, which the
// physics capsule never rotates.
type PoseData struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

var Pose = donburi.NewComponentType[PoseData]()
