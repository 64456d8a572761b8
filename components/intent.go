package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// IntentData is the movement intent derived from raw input each render
// frame. The fixed-step systems read intent, never raw input.
type IntentData struct {
	MoveDir mgl64.Vec3 // camera-relative, horizontal, unit length when Moving
	Moving  bool
	Running bool

	JumpQueued bool // consumed by the velocity resolver on the next fixed step
}

var Intent = donburi.NewComponentType[IntentData]()
