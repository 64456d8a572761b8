package systems

import (
	"github.com/wandermere/verse/components"
	cfg "github.com/wandermere/verse/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StepDrives advances tween-driven kinematic platforms one fixed step.
// Runs before the locomotion sweep so avatars stand on this step's pose.
func StepDrives(e *ecs.ECS) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	engine := components.Space.Get(spaceEntry).Engine

	components.Drive.Each(e.World, func(entry *donburi.Entry) {
		drive := components.Drive.Get(entry)
		if drive.Seq == nil {
			return
		}

		value, _, seqDone := drive.Seq.Update(float32(cfg.Physics.FixedStep))
		if seqDone {
			drive.Seq.Reset()
		}

		pose, ok := engine.ActorPose(drive.Actor)
		if !ok {
			return
		}
		pose.Position = drive.Origin.Add(drive.Axis.Mul(float64(value)))
		engine.SetGlobalPose(drive.Actor, pose)
	})
}
