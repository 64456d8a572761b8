package systems

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/wandermere/verse/components"
	cfg "github.com/wandermere/verse/config"
	"github.com/wandermere/verse/physics"
	"github.com/wandermere/verse/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newBinderWorld extends the test world with the camera rig and a fixed
// render-frame delta.
func newBinderWorld(t *testing.T) (*ecs.ECS, *donburi.Entry, *components.CameraData, *components.InputData) {
	t.Helper()
	e, _, avatar := newTestWorld(t, mgl64.Vec3{0, 0.9, 0})
	camEntry := factory.CreateCamera(e)

	spaceEntry, _ := components.Space.First(e.World)
	components.Space.Get(spaceEntry).FrameDelta = 1.0 / 60

	return e, avatar, components.Camera.Get(camEntry), components.Input.Get(camEntry)
}

func TestPitchClampsAtLimit(t *testing.T) {
	e, _, cam, in := newBinderWorld(t)

	in.PointerLocked = true
	in.LookDY = 1e6
	UpdateBinder(e)

	limit := cfg.Camera.PitchLimitDeg * math.Pi / 180
	if cam.Pitch != -limit {
		t.Errorf("pitch = %v, want clamp at %v", cam.Pitch, -limit)
	}

	in.LookDY = -1e6
	UpdateBinder(e)
	if cam.Pitch != limit {
		t.Errorf("pitch = %v, want clamp at %v", cam.Pitch, limit)
	}
}

func TestLookIgnoredWithoutPointerLock(t *testing.T) {
	e, _, cam, in := newBinderWorld(t)

	in.PointerLocked = false
	in.LookDX = 500
	in.LookDY = 500
	UpdateBinder(e)

	if cam.Yaw != 0 || cam.Pitch != 0 {
		t.Errorf("camera turned without look-lock: yaw=%v pitch=%v", cam.Yaw, cam.Pitch)
	}
}

func TestZoomClampsToRange(t *testing.T) {
	e, _, cam, in := newBinderWorld(t)

	in.ScrollDY = 1e6
	UpdateBinder(e)
	if cam.TargetZoom != cfg.Camera.ZoomMin {
		t.Errorf("target zoom = %v, want min %v", cam.TargetZoom, cfg.Camera.ZoomMin)
	}

	in.ScrollDY = -1e6
	UpdateBinder(e)
	if cam.TargetZoom != cfg.Camera.ZoomMax {
		t.Errorf("target zoom = %v, want max %v", cam.TargetZoom, cfg.Camera.ZoomMax)
	}

	// The eased zoom settles on the target.
	in.ScrollDY = 0
	for i := 0; i < 120; i++ {
		UpdateBinder(e)
	}
	if math.Abs(cam.Zoom-cam.TargetZoom) > 1e-3 {
		t.Errorf("zoom %v did not settle on target %v", cam.Zoom, cam.TargetZoom)
	}
}

func TestMoveDirectionRotatesWithCameraYaw(t *testing.T) {
	e, avatar, cam, in := newBinderWorld(t)

	cam.Yaw = math.Pi / 2
	in.Current[cfg.ActionMoveForward] = true
	UpdateBinder(e)

	intent := components.Intent.Get(avatar)
	if !intent.Moving {
		t.Fatal("expected moving intent")
	}
	if !intent.MoveDir.ApproxEqualThreshold(mgl64.Vec3{1, 0, 0}, 1e-12) {
		t.Errorf("move direction = %v, want {1 0 0} for quarter-turn yaw", intent.MoveDir)
	}
}

func TestDiagonalMoveDirIsUnit(t *testing.T) {
	e, avatar, _, in := newBinderWorld(t)

	in.Current[cfg.ActionMoveForward] = true
	in.Current[cfg.ActionMoveRight] = true
	UpdateBinder(e)

	dir := components.Intent.Get(avatar).MoveDir
	if math.Abs(dir.Len()-1) > 1e-12 {
		t.Errorf("diagonal move direction length = %v, want 1", dir.Len())
	}
}

func TestFacingEasesTowardMovement(t *testing.T) {
	e, avatar, cam, in := newBinderWorld(t)

	cam.Yaw = math.Pi / 2
	in.Current[cfg.ActionMoveForward] = true

	pose := components.Pose.Get(avatar)
	UpdateBinder(e)
	after1 := physics.YawAngle(pose.Rotation)
	if after1 <= 0 || after1 >= math.Pi/2 {
		t.Fatalf("facing should be partway toward the move direction, got %v", after1)
	}

	for i := 0; i < 600; i++ {
		UpdateBinder(e)
	}
	if got := physics.YawAngle(pose.Rotation); math.Abs(got-math.Pi/2) > 1e-3 {
		t.Errorf("facing yaw = %v, want convergence to %v", got, math.Pi/2)
	}
}

func TestJumpQueuedOnPressEdgeOnly(t *testing.T) {
	e, avatar, _, in := newBinderWorld(t)
	intent := components.Intent.Get(avatar)

	in.Current[cfg.ActionJump] = true
	in.Previous[cfg.ActionJump] = false
	UpdateBinder(e)
	if !intent.JumpQueued {
		t.Fatal("jump press edge did not queue a jump")
	}

	intent.JumpQueued = false
	in.Previous[cfg.ActionJump] = true // still held
	UpdateBinder(e)
	if intent.JumpQueued {
		t.Error("held jump key queued a second jump")
	}
}

func TestCameraOrbitsBehindAvatar(t *testing.T) {
	e, _, cam, _ := newBinderWorld(t)

	cam.Yaw = 0
	cam.Zoom = 5
	cam.TargetZoom = 5
	for i := 0; i < 600; i++ {
		UpdateBinder(e)
	}

	// Avatar at origin facing +Z, camera must sit behind on -Z at eye level.
	want := mgl64.Vec3{0, 0.9 + cfg.Camera.EyeOffset, -5}
	if !cam.Position.ApproxEqualThreshold(want, 1e-3) {
		t.Errorf("camera position = %v, want %v", cam.Position, want)
	}
}
