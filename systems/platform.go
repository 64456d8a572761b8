package systems

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/wandermere/verse/components"
	cfg "github.com/wandermere/verse/config"
	"github.com/wandermere/verse/physics"
	"github.com/wandermere/verse/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StepPlatforms carries grounded avatars along with their support actor.
// The tracked delta is applied before the support ray runs, so a platform
// that moved this step is re-found at its new pose instead of slipping out
// from under the ray. The correction is a direct pose write, the only place
// the controller moves the body without going through velocity.
func StepPlatforms(e *ecs.ECS) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	engine := components.Space.Get(spaceEntry).Engine

	tags.Avatar.Each(e.World, func(entry *donburi.Entry) {
		av := components.Avatar.Get(entry)
		ctrl := components.Controller.Get(entry)
		ride := components.PlatformRide.Get(entry)

		if !ctrl.Grounded {
			clearRide(ride)
			return
		}

		bodyPose, ok := engine.ActorPose(av.Body)
		if !ok {
			clearRide(ride)
			return
		}

		if ride.Active {
			supportPose, ok := engine.ActorPose(ride.Support)
			if !ok {
				// Stale handle between query and dereference. Not an error.
				clearRide(ride)
			} else {
				delta := supportPose.Delta(ride.PrevPose)
				ride.PrevPose = supportPose
				if !delta.ApproxEqual(physics.IdentityPose(), 1e-12) {
					bodyPose.Position = delta.Apply(bodyPose.Position)
					engine.SetGlobalPose(av.Body, bodyPose)

					// Facing turns with the platform's yaw only. Pitch and
					// roll of the support must never tip the avatar.
					if yaw := physics.YawAngle(delta.Rotation); yaw != 0 {
						pose := components.Pose.Get(entry)
						pose.Rotation = physics.YawQuat(yaw).Mul(pose.Rotation).Normalize()
					}
				}
			}
		}

		// Revalidate the support from the carried position. The ray starts
		// just above the capsule base so it cannot begin inside the surface.
		foot := bodyPose.Position.Y() - av.Height/2
		origin := mgl64.Vec3{bodyPose.Position.X(), foot + cfg.Physics.SupportRayLift, bodyPose.Position.Z()}

		hit, hitOK := engine.Raycast(origin, mgl64.Vec3{0, -1, 0}, cfg.Physics.SupportRayDist, physics.LayerSupport)
		if !hitOK {
			clearRide(ride)
			return
		}
		supportPose, ok := engine.ActorPose(hit.Actor)
		if !ok {
			clearRide(ride)
			return
		}
		if !ride.Active || ride.Support != hit.Actor {
			// New support: baseline only, no movement until the next step.
			ride.Support = hit.Actor
			ride.PrevPose = supportPose
			ride.Active = true
		}
	})
}

func clearRide(ride *components.PlatformRideData) {
	ride.Support = physics.NoActor
	ride.PrevPose = physics.IdentityPose()
	ride.Active = false
}
