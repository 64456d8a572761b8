package systems

import (
	"github.com/wandermere/verse/components"
	"github.com/wandermere/verse/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StepPresentation mirrors each avatar's physics position into its
// presentation pose after the engine integrates. Rotation is left alone;
// facing belongs to the binder and the platform tracker.
func StepPresentation(e *ecs.ECS) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	engine := components.Space.Get(spaceEntry).Engine

	tags.Avatar.Each(e.World, func(entry *donburi.Entry) {
		av := components.Avatar.Get(entry)
		if bodyPose, ok := engine.ActorPose(av.Body); ok {
			components.Pose.Get(entry).Position = bodyPose.Position
		}
	})
}
