package systems

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/wandermere/verse/archetypes"
	"github.com/wandermere/verse/components"
	cfg "github.com/wandermere/verse/config"
	"github.com/wandermere/verse/physics"
)

func TestDriveMovesActorAlongAxis(t *testing.T) {
	e, engine, _ := newTestWorld(t, mgl64.Vec3{0, 5, 0})
	actor := engine.AddActor(physics.KindKinematic, physics.LayerEnvironment, physics.IdentityPose())

	platform := archetypes.MovingPlatform.Spawn(e)
	components.Drive.SetValue(platform, components.DriveData{
		Actor:  actor.ID,
		Seq:    gween.NewSequence(gween.New(0, 1, 1, ease.Linear)),
		Origin: mgl64.Vec3{2, 0, 0},
		Axis:   mgl64.Vec3{0, 1, 0},
	})

	steps := int(math.Round(0.5 / cfg.Physics.FixedStep))
	for i := 0; i < steps; i++ {
		StepDrives(e)
	}

	pose, ok := engine.ActorPose(actor.ID)
	if !ok {
		t.Fatal("actor vanished")
	}
	want := mgl64.Vec3{2, 0.5, 0}
	if !pose.Position.ApproxEqualThreshold(want, 1e-3) {
		t.Errorf("actor position = %v, want %v", pose.Position, want)
	}
}

func TestDriveRestartsAfterSequenceCompletes(t *testing.T) {
	e, engine, _ := newTestWorld(t, mgl64.Vec3{0, 5, 0})
	actor := engine.AddActor(physics.KindKinematic, physics.LayerEnvironment, physics.IdentityPose())

	platform := archetypes.MovingPlatform.Spawn(e)
	components.Drive.SetValue(platform, components.DriveData{
		Actor:  actor.ID,
		Seq:    gween.NewSequence(gween.New(0, 1, 0.1, ease.Linear)),
		Origin: mgl64.Vec3{},
		Axis:   mgl64.Vec3{0, 1, 0},
	})

	// Run well past the sequence length; the drive must keep cycling
	// instead of pinning at the end.
	for i := 0; i < 60; i++ {
		StepDrives(e)
	}

	pose, _ := engine.ActorPose(actor.ID)
	if pose.Position.Y() < 0 || pose.Position.Y() > 1 {
		t.Errorf("actor escaped its travel range: %v", pose.Position)
	}
}

func TestDriveToleratesStaleActor(t *testing.T) {
	e, engine, _ := newTestWorld(t, mgl64.Vec3{0, 5, 0})
	actor := engine.AddActor(physics.KindKinematic, physics.LayerEnvironment, physics.IdentityPose())

	platform := archetypes.MovingPlatform.Spawn(e)
	components.Drive.SetValue(platform, components.DriveData{
		Actor: actor.ID,
		Seq:   gween.NewSequence(gween.New(0, 1, 1, ease.Linear)),
		Axis:  mgl64.Vec3{0, 1, 0},
	})

	engine.Destroy(actor.ID)
	StepDrives(e) // must not panic
}
