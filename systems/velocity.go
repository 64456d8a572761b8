package systems

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/wandermere/verse/components"
	cfg "github.com/wandermere/verse/config"
	"github.com/wandermere/verse/physics"
	"github.com/wandermere/verse/shared/gamemath"
	"github.com/wandermere/verse/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StepVelocity resolves each avatar's rigid-body velocity and forces for
// one fixed step. Runs after the locomotion state machine so it sees the
// current grounded/slipping flags. The rules are order-sensitive: gravity,
// drag, normal projection, edge-snap, slip correction, movement, jump.
func StepVelocity(e *ecs.ECS) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	engine := components.Space.Get(spaceEntry).Engine
	dt := cfg.Physics.FixedStep

	tags.Avatar.Each(e.World, func(entry *donburi.Entry) {
		av := components.Avatar.Get(entry)
		ctrl := components.Controller.Get(entry)
		intent := components.Intent.Get(entry)

		vel := engine.LinearVelocity(av.Body)

		// Gravity. Grounded bodies skip it entirely so ramps hold still, but
		// a dynamic support still has to feel the avatar's weight.
		if ctrl.Grounded {
			if ctrl.SupportKind == physics.KindDynamic && ctrl.Support.Valid() {
				weight := av.Mass * cfg.Physics.Gravity * cfg.Physics.PlatformWeightCoef
				engine.AddForce(ctrl.Support, mgl64.Vec3{0, -weight, 0}, physics.ForceContinuous)
			}
		} else {
			engine.AddForce(av.Body, mgl64.Vec3{0, -av.Mass * cfg.Physics.Gravity, 0}, physics.ForceContinuous)
		}

		// Drag damps only the surface-parallel component; the normal
		// component carries jumps and elevator rides untouched.
		normal := gamemath.Up
		if ctrl.Grounded {
			normal = ctrl.GroundNormal
		}
		vel = gamemath.DampAlongPlane(vel, normal, cfg.Physics.Drag, dt)

		launching := ctrl.Jumping || ctrl.Jumped

		// Stick to the support by cancelling motion along its normal.
		if ctrl.Grounded && !launching {
			vel = gamemath.ProjectOnPlane(vel, ctrl.GroundNormal)
		}

		// Stepping off a ledge gets a firm downward push instead of a float.
		if ctrl.JustLeftGround && !launching {
			vel = mgl64.Vec3{vel.X(), -cfg.Physics.EdgeSnapVelocity, vel.Z()}
		}

		// A steep slope must never push the body upward.
		if ctrl.Slipping && vel.Y() > -cfg.Physics.SlipVelocity {
			vel = mgl64.Vec3{vel.X(), -cfg.Physics.SlipVelocity, vel.Z()}
		}

		// Movement force, rotated into the surface plane so ramps are pushed
		// along, not into. Magnitude is chosen so drag settles the body at
		// the configured walk or run speed.
		if intent.Moving {
			speed := cfg.Avatar.WalkSpeed
			if intent.Running {
				speed = cfg.Avatar.RunSpeed
			}
			dir := intent.MoveDir
			if ctrl.Grounded {
				dir = gamemath.AlignToPlane(dir, ctrl.GroundNormal)
			}
			force := dir.Mul(speed * cfg.Physics.Drag * av.Mass)
			engine.AddForce(av.Body, force, physics.ForceContinuous)
		}

		if intent.JumpQueued {
			intent.JumpQueued = false
			if ctrl.Grounded && !launching {
				vy := gamemath.JumpLaunchSpeed(cfg.Physics.Gravity, cfg.Avatar.JumpHeight, av.Mass)
				vel = mgl64.Vec3{vel.X(), vy, vel.Z()}
				ctrl.Jumped = true
			}
		}

		if !gamemath.IsFinite(vel) {
			log.Printf("[velocity] non-finite velocity %v resolved for body %v, write-back skipped", vel, av.Body)
			return
		}
		engine.SetLinearVelocity(av.Body, vel)
	})
}
