package systems

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/wandermere/verse/components"
	cfg "github.com/wandermere/verse/config"
	"github.com/wandermere/verse/physics"
	"github.com/wandermere/verse/shared/gamemath"
	"github.com/wandermere/verse/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StepLocomotion recomputes the controller state for every avatar from a
// downward sphere sweep. Runs once per fixed physics step, before the
// velocity resolver.
func StepLocomotion(e *ecs.ECS) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	engine := space.Engine
	dt := cfg.Physics.FixedStep

	tags.Avatar.Each(e.World, func(entry *donburi.Entry) {
		av := components.Avatar.Get(entry)
		ctrl := components.Controller.Get(entry)

		pose, ok := engine.ActorPose(av.Body)
		if !ok {
			return
		}

		wasGrounded := ctrl.Grounded

		// Sweep starts just inside the capsule base so a surface flush
		// with the feet still registers.
		radius := av.Radius * cfg.Physics.SweepRadiusScale
		foot := pose.Position.Y() - av.Height/2
		origin := mgl64.Vec3{
			pose.Position.X(),
			foot + radius + cfg.Physics.GroundSweepInset,
			pose.Position.Z(),
		}
		maxDist := cfg.Physics.GroundSweepDist + cfg.Physics.GroundSweepInset

		hit, hitOK := engine.SweepSphere(radius, origin, mgl64.Vec3{0, -1, 0}, maxDist, physics.LayerGround)

		ctrl.Grounded = false
		ctrl.Slipping = false
		ctrl.Support = physics.NoActor
		ctrl.SupportKind = physics.KindStatic

		if hitOK {
			ctrl.GroundNormal = hit.Normal
			ctrl.GroundAngleDeg = gamemath.SlopeAngleDeg(hit.Normal)
			if ctrl.GroundAngleDeg > cfg.Physics.SteepSlopeDeg {
				ctrl.Slipping = true
			} else {
				ctrl.Grounded = true
				ctrl.Support = hit.Actor
				if kind, ok := engine.ActorKind(hit.Actor); ok {
					ctrl.SupportKind = kind
				}
			}
		} else {
			ctrl.GroundNormal = gamemath.Up
			ctrl.GroundAngleDeg = 0
		}

		ctrl.JustLeftGround = wasGrounded && !ctrl.Grounded

		if ctrl.Grounded {
			ctrl.Jumping = false
			ctrl.Falling = false
			ctrl.FallTimer = 0
		} else {
			// The jump impulse is applied while contact still reports
			// grounded; the flag converts once contact is actually lost.
			if ctrl.Jumped {
				ctrl.Jumped = false
				ctrl.Jumping = true
			}
			if engine.LinearVelocity(av.Body).Y() < 0 {
				ctrl.FallTimer += dt
				if ctrl.FallTimer > cfg.Physics.FallHysteresis {
					ctrl.Falling = true
					ctrl.Jumping = false
				}
			} else {
				ctrl.FallTimer = 0
				ctrl.Falling = false
			}
		}

		// High friction from the support while standing, near-zero in the
		// air so the capsule never snags on walls.
		want := physics.CombineMin
		if ctrl.Grounded {
			want = physics.CombineMax
		}
		if ctrl.Combine != want {
			engine.SetFrictionCombine(av.Body, want)
			ctrl.Combine = want
		}
	})
}
