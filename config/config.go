package config

import "github.com/yohamta/donburi/ecs"

// Default is the ECS layer all entities and renderers use.
const Default ecs.LayerID = 0

// AvatarConfig contains the local avatar's body and movement tuning.
type AvatarConfig struct {
	// Body
	CapsuleRadius float64 `yaml:"capsuleRadius"`
	CapsuleHeight float64 `yaml:"capsuleHeight"`
	Mass          float64 `yaml:"mass"`
	// The auxiliary head sphere mitigates raycast tunneling against thin
	// geometry above the capsule.
	HeadSphereRadius float64 `yaml:"headSphereRadius"`

	// Movement
	WalkSpeed  float64 `yaml:"walkSpeed"`
	RunSpeed   float64 `yaml:"runSpeed"`
	JumpHeight float64 `yaml:"jumpHeight"`

	// FacingTau is the time constant (seconds) of the slerp pulling the
	// avatar's facing toward the movement direction.
	FacingTau float64 `yaml:"facingTau"`
}

// PhysicsConfig contains the locomotion controller's tuning values.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"` // units/s², positive down
	FixedStep        float64 `yaml:"fixedStep"`
	MaxStepsPerFrame int     `yaml:"maxStepsPerFrame"`

	// Ground sweep
	GroundSweepDist  float64 `yaml:"groundSweepDist"`
	GroundSweepInset float64 `yaml:"groundSweepInset"` // sweep origin height above the capsule base
	SweepRadiusScale float64 `yaml:"sweepRadiusScale"` // fraction of the capsule radius

	// State machine
	SteepSlopeDeg  float64 `yaml:"steepSlopeDeg"`
	FallHysteresis float64 `yaml:"fallHysteresis"` // seconds of downward flight before "falling"

	// Velocity resolution
	Drag             float64 `yaml:"drag"`
	EdgeSnapVelocity float64 `yaml:"edgeSnapVelocity"` // units/s, applied downward
	SlipVelocity     float64 `yaml:"slipVelocity"`     // units/s, minimum downward speed while slipping

	// PlatformWeightCoef scales the downward force pressed onto a dynamic
	// support body so it reacts to the avatar's weight while the avatar's
	// own gravity is suppressed. Empirically tuned; treat as opaque.
	PlatformWeightCoef float64 `yaml:"platformWeightCoef"`

	// Support raycast (platform tracking)
	SupportRayDist float64 `yaml:"supportRayDist"`
	SupportRayLift float64 `yaml:"supportRayLift"` // ray origin height above the capsule base
}

// CameraConfig contains third-person camera rig tuning.
type CameraConfig struct {
	EyeOffset     float64 `yaml:"eyeOffset"` // vertical offset from the body position
	Sensitivity   float64 `yaml:"sensitivity"`
	InvertY       bool    `yaml:"invertY"`
	PitchLimitDeg float64 `yaml:"pitchLimitDeg"`

	ZoomMin  float64 `yaml:"zoomMin"`
	ZoomMax  float64 `yaml:"zoomMax"`
	ZoomStep float64 `yaml:"zoomStep"`
	ZoomEase float64 `yaml:"zoomEase"` // seconds per zoom tween

	// StartZoom is the camera distance at spawn. Zero or out-of-range values
	// fall back to the middle of the zoom range. Saved settings write the last
	// session's zoom here before the camera is created.
	StartZoom float64 `yaml:"startZoom"`

	FollowSmoothing float64 `yaml:"followSmoothing"`
}

// NetConfig contains client networking configuration.
type NetConfig struct {
	SendRate int    `yaml:"sendRate"` // movement updates per second
	Version  string `yaml:"version"`
}

// ClientConfig contains window/host configuration.
type ClientConfig struct {
	Width  int
	Height int
	Title  string
}

var (
	Avatar = AvatarConfig{
		CapsuleRadius:    0.4,
		CapsuleHeight:    1.8,
		Mass:             3.0,
		HeadSphereRadius: 0.2,
		WalkSpeed:        4.0,
		RunSpeed:         9.0,
		JumpHeight:       1.5,
		FacingTau:        0.12,
	}

	Physics = PhysicsConfig{
		Gravity:            20.0,
		FixedStep:          1.0 / 60.0,
		MaxStepsPerFrame:   5,
		GroundSweepDist:    0.15,
		GroundSweepInset:   0.05,
		SweepRadiusScale:   0.95,
		SteepSlopeDeg:      60.0,
		FallHysteresis:     0.1,
		Drag:               8.0,
		EdgeSnapVelocity:   2.5,
		SlipVelocity:       3.0,
		PlatformWeightCoef: 0.2,
		SupportRayDist:     0.5,
		SupportRayLift:     0.1,
	}

	Camera = CameraConfig{
		EyeOffset:       1.6,
		Sensitivity:     0.0025,
		PitchLimitDeg:   90.0,
		ZoomMin:         1.5,
		ZoomMax:         12.0,
		ZoomStep:        0.75,
		ZoomEase:        0.25,
		FollowSmoothing: 0.15,
	}

	Net = NetConfig{
		SendRate: 10,
		Version:  "0.3.0",
	}

	C = ClientConfig{
		Width:  1280,
		Height: 720,
		Title:  "verse",
	}
)
