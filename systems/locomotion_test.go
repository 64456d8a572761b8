package systems

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/wandermere/verse/components"
	cfg "github.com/wandermere/verse/config"
	"github.com/wandermere/verse/physics"
)

func TestGroundAngleThreshold(t *testing.T) {
	tests := []struct {
		name         string
		angleDeg     float64
		wantGrounded bool
		wantSlipping bool
	}{
		{"flat", 0, true, false},
		{"gentle ramp", 25, true, false},
		{"steep but walkable", 59.9, true, false},
		{"at limit", 60, true, false},
		{"past limit", 60.1, false, true},
		{"cliff face", 80, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, engine, avatar := newTestWorld(t, mgl64.Vec3{0, 0.9, 0})
			support := engine.AddActor(physics.KindStatic, physics.LayerEnvironment, physics.IdentityPose())

			rad := tt.angleDeg * math.Pi / 180
			normal := mgl64.Vec3{math.Sin(rad), math.Cos(rad), 0}
			engine.SweepFn = func(_ float64, _, _ mgl64.Vec3, _ float64, _ physics.LayerMask) (physics.SweepHit, bool) {
				return physics.SweepHit{Normal: normal, Distance: 0.01, Actor: support.ID}, true
			}

			StepLocomotion(e)

			ctrl := components.Controller.Get(avatar)
			if ctrl.Grounded != tt.wantGrounded {
				t.Errorf("grounded = %v, want %v", ctrl.Grounded, tt.wantGrounded)
			}
			if ctrl.Slipping != tt.wantSlipping {
				t.Errorf("slipping = %v, want %v", ctrl.Slipping, tt.wantSlipping)
			}
			if ctrl.Grounded && ctrl.Slipping {
				t.Error("grounded and slipping must be mutually exclusive")
			}
			if tt.wantSlipping && (ctrl.Jumping || ctrl.Jumped) {
				t.Error("steep contact must never produce jump flags")
			}
		})
	}
}

func TestFallingAfterHysteresis(t *testing.T) {
	e, engine, avatar := newTestWorld(t, mgl64.Vec3{0, 10, 0})
	av := components.Avatar.Get(avatar)
	engine.SetLinearVelocity(av.Body, mgl64.Vec3{0, -1, 0})

	ctrl := components.Controller.Get(avatar)
	steps := int(cfg.Physics.FallHysteresis / cfg.Physics.FixedStep)
	for i := 0; i < steps; i++ {
		StepLocomotion(e)
		if ctrl.Falling {
			t.Fatalf("falling before hysteresis elapsed, step %d timer %v", i, ctrl.FallTimer)
		}
	}
	StepLocomotion(e)
	if !ctrl.Falling {
		t.Errorf("not falling after %v airborne, timer %v", cfg.Physics.FallHysteresis, ctrl.FallTimer)
	}
	if ctrl.Jumping {
		t.Error("jumping and falling must be mutually exclusive")
	}
}

func TestFallTimerHoldsWhileAscending(t *testing.T) {
	e, engine, avatar := newTestWorld(t, mgl64.Vec3{0, 10, 0})
	av := components.Avatar.Get(avatar)
	engine.SetLinearVelocity(av.Body, mgl64.Vec3{0, 3, 0})

	for i := 0; i < 30; i++ {
		StepLocomotion(e)
	}
	ctrl := components.Controller.Get(avatar)
	if ctrl.FallTimer != 0 {
		t.Errorf("fallTimer accumulated %v while ascending", ctrl.FallTimer)
	}
	if ctrl.Falling {
		t.Error("falling while ascending")
	}
}

func TestFallTimerResetsInstantlyOnGrounding(t *testing.T) {
	e, engine, avatar := newTestWorld(t, mgl64.Vec3{0, 10, 0})
	addGround(engine, physics.KindStatic, 0)
	av := components.Avatar.Get(avatar)
	engine.SetLinearVelocity(av.Body, mgl64.Vec3{0, -1, 0})

	for i := 0; i < 20; i++ {
		StepLocomotion(e)
	}
	ctrl := components.Controller.Get(avatar)
	if ctrl.FallTimer == 0 {
		t.Fatal("fall timer should have accumulated while airborne")
	}

	placeBody(engine, avatar, mgl64.Vec3{0, standingY(avatar, 0), 0})
	StepLocomotion(e)

	if !ctrl.Grounded {
		t.Fatal("expected grounded after landing")
	}
	if ctrl.FallTimer != 0 {
		t.Errorf("fallTimer = %v after grounding, want 0", ctrl.FallTimer)
	}
	if ctrl.Falling {
		t.Error("falling still set after grounding")
	}
}

func TestJustLeftGroundFiresExactlyOnce(t *testing.T) {
	e, engine, avatar := newTestWorld(t, mgl64.Vec3{0, 0.9, 0})
	addGround(engine, physics.KindStatic, 0)

	ctrl := components.Controller.Get(avatar)

	StepLocomotion(e)
	if !ctrl.Grounded {
		t.Fatal("expected grounded at spawn")
	}
	if ctrl.JustLeftGround {
		t.Error("justLeftGround set while still grounded")
	}

	placeBody(engine, avatar, mgl64.Vec3{0, 5, 0})
	StepLocomotion(e)
	if !ctrl.JustLeftGround {
		t.Error("justLeftGround not set on the transition step")
	}

	StepLocomotion(e)
	if ctrl.JustLeftGround {
		t.Error("justLeftGround persisted past the transition step")
	}
}

func TestJumpedConvertsToJumpingWhenAirborne(t *testing.T) {
	e, engine, avatar := newTestWorld(t, mgl64.Vec3{0, 0.9, 0})
	addGround(engine, physics.KindStatic, 0)

	ctrl := components.Controller.Get(avatar)
	StepLocomotion(e)

	// Impulse applied while contact still reports ground.
	ctrl.Jumped = true
	StepLocomotion(e)
	if !ctrl.Jumped || ctrl.Jumping {
		t.Fatalf("jumped should survive while grounded; jumped=%v jumping=%v", ctrl.Jumped, ctrl.Jumping)
	}

	placeBody(engine, avatar, mgl64.Vec3{0, 5, 0})
	av := components.Avatar.Get(avatar)
	engine.SetLinearVelocity(av.Body, mgl64.Vec3{0, 7, 0})
	StepLocomotion(e)
	if ctrl.Jumped || !ctrl.Jumping {
		t.Fatalf("jumped should convert to jumping once airborne; jumped=%v jumping=%v", ctrl.Jumped, ctrl.Jumping)
	}

	placeBody(engine, avatar, mgl64.Vec3{0, standingY(avatar, 0), 0})
	StepLocomotion(e)
	if ctrl.Jumping {
		t.Error("jumping should clear on re-grounding")
	}
}

func TestFrictionCombineFollowsGroundState(t *testing.T) {
	e, engine, avatar := newTestWorld(t, mgl64.Vec3{0, 0.9, 0})
	addGround(engine, physics.KindStatic, 0)
	av := components.Avatar.Get(avatar)

	StepLocomotion(e)
	if got := engine.Actor(av.Body).Combine; got != physics.CombineMax {
		t.Errorf("grounded combine = %v, want MAX", got)
	}

	placeBody(engine, avatar, mgl64.Vec3{0, 5, 0})
	StepLocomotion(e)
	if got := engine.Actor(av.Body).Combine; got != physics.CombineMin {
		t.Errorf("airborne combine = %v, want MIN", got)
	}
}
