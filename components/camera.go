package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CameraData is the orbit camera following the local avatar.
type CameraData struct {
	Yaw   float64 // radians around world up
	Pitch float64 // radians, clamped to the configured limit

	Zoom       float64 // current orbit distance
	TargetZoom float64
	ZoomTween  *gween.Tween // nil when zoom is at rest

	Target   mgl64.Vec3 // smoothed look-at point (avatar eye position)
	Position mgl64.Vec3 // computed world position for rendering
}

var Camera = donburi.NewComponentType[CameraData]()
