package factory

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/wandermere/verse/archetypes"
	"github.com/wandermere/verse/components"
	"github.com/wandermere/verse/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateElevator drives an existing kinematic actor up and down along axis
// by travel units, easing to a stop at each end. The actor itself belongs
// to the engine's world; the entity only owns the drive.
func CreateElevator(ecs *ecs.ECS, actor physics.ActorID, origin, axis mgl64.Vec3, travel, period float64) *donburi.Entry {
	half := float32(period / 2)
	seq := gween.NewSequence(
		gween.New(0, float32(travel), half, ease.InOutQuad),
		gween.New(float32(travel), 0, half, ease.InOutQuad),
	)

	platform := archetypes.MovingPlatform.Spawn(ecs)
	components.Drive.SetValue(platform, components.DriveData{
		Actor:  actor,
		Seq:    seq,
		Origin: origin,
		Axis:   axis,
	})
	return platform
}

// CreateCarousel drives an existing kinematic actor back and forth along a
// horizontal axis with a constant speed profile.
func CreateCarousel(ecs *ecs.ECS, actor physics.ActorID, origin, axis mgl64.Vec3, travel, period float64) *donburi.Entry {
	half := float32(period / 2)
	seq := gween.NewSequence(
		gween.New(0, float32(travel), half, ease.Linear),
		gween.New(float32(travel), 0, half, ease.Linear),
	)

	platform := archetypes.MovingPlatform.Spawn(ecs)
	components.Drive.SetValue(platform, components.DriveData{
		Actor:  actor,
		Seq:    seq,
		Origin: origin,
		Axis:   axis,
	})
	return platform
}
