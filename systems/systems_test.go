package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/wandermere/verse/components"
	"github.com/wandermere/verse/physics"
	"github.com/wandermere/verse/physics/physicstest"
	"github.com/wandermere/verse/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestWorld builds an ECS with the scriptable engine, the space
// singleton and one avatar at spawn. No ground exists until the test
// registers some.
func newTestWorld(t *testing.T, spawn mgl64.Vec3) (*ecs.ECS, *physicstest.Engine, *donburi.Entry) {
	t.Helper()
	engine := physicstest.New()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, engine, nil)
	avatar, err := factory.CreateAvatar(e, engine, spawn)
	if err != nil {
		t.Fatalf("CreateAvatar: %v", err)
	}
	return e, engine, avatar
}

// standingY is the capsule-center height at which the feet rest on a
// surface at the given y.
func standingY(avatar *donburi.Entry, surfaceY float64) float64 {
	av := components.Avatar.Get(avatar)
	return surfaceY + av.Height/2
}

// addGround registers an infinite walkable plane at y owned by a fresh
// actor of the given kind.
func addGround(engine *physicstest.Engine, kind physics.ActorKind, y float64) *physicstest.Actor {
	actor := engine.AddActor(kind, physics.LayerEnvironment, physics.IdentityPose())
	engine.AddGroundPlane(actor.ID, y, mgl64.Vec3{0, 1, 0}, physics.LayerEnvironment)
	return actor
}

// placeBody teleports the avatar's physics body.
func placeBody(engine *physicstest.Engine, avatar *donburi.Entry, pos mgl64.Vec3) {
	av := components.Avatar.Get(avatar)
	pose, _ := engine.ActorPose(av.Body)
	pose.Position = pos
	engine.SetGlobalPose(av.Body, pose)
}
