package factory

import (
	"github.com/wandermere/verse/archetypes"
	"github.com/wandermere/verse/components"
	cfg "github.com/wandermere/verse/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the orbit camera with its input snapshot. The starting
// distance comes from cfg.Camera.StartZoom when it is inside the zoom range,
// otherwise the middle of the range.
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	zoom := cfg.Camera.StartZoom
	if zoom < cfg.Camera.ZoomMin || zoom > cfg.Camera.ZoomMax {
		zoom = (cfg.Camera.ZoomMin + cfg.Camera.ZoomMax) / 2
	}
	components.Camera.SetValue(camera, components.CameraData{
		Zoom:       zoom,
		TargetZoom: zoom,
	})
	return camera
}
