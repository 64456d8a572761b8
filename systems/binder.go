package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/wandermere/verse/components"
	cfg "github.com/wandermere/verse/config"
	"github.com/wandermere/verse/mathutil"
	"github.com/wandermere/verse/physics"
	"github.com/wandermere/verse/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBinder runs on the render step. It turns the polled input snapshot
// into camera orientation and movement intent, slerps the avatar's facing
// toward its movement direction, and places the orbit camera.
func UpdateBinder(e *ecs.ECS) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	dt := components.Space.Get(spaceEntry).FrameDelta

	camEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(camEntry)
	in := components.Input.Get(camEntry)

	// Look
	if in.PointerLocked {
		cam.Yaw -= in.LookDX * cfg.Camera.Sensitivity
		pitchDelta := in.LookDY * cfg.Camera.Sensitivity
		if cfg.Camera.InvertY {
			pitchDelta = -pitchDelta
		}
		limit := cfg.Camera.PitchLimitDeg * math.Pi / 180
		cam.Pitch = mathutil.ClampFloat(cam.Pitch-pitchDelta, -limit, limit)
	}

	// Zoom, eased toward the scroll target rather than stepped.
	if in.ScrollDY != 0 {
		cam.TargetZoom = mathutil.ClampFloat(
			cam.TargetZoom-in.ScrollDY*cfg.Camera.ZoomStep,
			cfg.Camera.ZoomMin, cfg.Camera.ZoomMax)
		cam.ZoomTween = gween.New(float32(cam.Zoom), float32(cam.TargetZoom), float32(cfg.Camera.ZoomEase), ease.OutQuad)
	}
	if cam.ZoomTween != nil {
		value, done := cam.ZoomTween.Update(float32(dt))
		cam.Zoom = float64(value)
		if done {
			cam.ZoomTween = nil
		}
	}

	tags.Avatar.Each(e.World, func(entry *donburi.Entry) {
		intent := components.Intent.Get(entry)
		pose := components.Pose.Get(entry)

		// Desired direction in camera space, rotated into the world by the
		// camera yaw. Forward is camera-forward.
		var local mgl64.Vec3
		if in.Pressed(cfg.ActionMoveForward) {
			local = local.Add(mgl64.Vec3{0, 0, 1})
		}
		if in.Pressed(cfg.ActionMoveBack) {
			local = local.Sub(mgl64.Vec3{0, 0, 1})
		}
		if in.Pressed(cfg.ActionMoveLeft) {
			local = local.Sub(mgl64.Vec3{1, 0, 0})
		}
		if in.Pressed(cfg.ActionMoveRight) {
			local = local.Add(mgl64.Vec3{1, 0, 0})
		}

		intent.Moving = local.Len() > 0
		intent.Running = in.Pressed(cfg.ActionRun)
		if intent.Moving {
			intent.MoveDir = physics.YawQuat(cam.Yaw).Rotate(local.Normalize())
		} else {
			intent.MoveDir = mgl64.Vec3{}
		}
		if in.JustPressed(cfg.ActionJump) {
			intent.JumpQueued = true
		}

		// Facing eases toward the movement direction instead of snapping.
		if intent.Moving && dt > 0 {
			target := physics.YawQuat(math.Atan2(intent.MoveDir.X(), intent.MoveDir.Z()))
			t := 1 - math.Exp(-dt/cfg.Avatar.FacingTau)
			pose.Rotation = mgl64.QuatSlerp(pose.Rotation, target, t)
		}

		// Camera follows the eye point through its own smoothing pass.
		eye := pose.Position.Add(mgl64.Vec3{0, cfg.Camera.EyeOffset, 0})
		if dt > 0 {
			f := 1 - math.Exp(-dt/cfg.Camera.FollowSmoothing)
			cam.Target = mgl64.Vec3{
				mathutil.Lerp(cam.Target.X(), eye.X(), f),
				mathutil.Lerp(cam.Target.Y(), eye.Y(), f),
				mathutil.Lerp(cam.Target.Z(), eye.Z(), f),
			}
		}

		fwd := mgl64.Vec3{
			math.Cos(cam.Pitch) * math.Sin(cam.Yaw),
			math.Sin(cam.Pitch),
			math.Cos(cam.Pitch) * math.Cos(cam.Yaw),
		}
		cam.Position = cam.Target.Sub(fwd.Mul(cam.Zoom))
	})
}
