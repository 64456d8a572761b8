package factory

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/wandermere/verse/archetypes"
	"github.com/wandermere/verse/components"
	cfg "github.com/wandermere/verse/config"
	"github.com/wandermere/verse/physics"
	"github.com/wandermere/verse/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateAvatar builds the local avatar: a capsule rigid body with an
// auxiliary head sphere, plus the controller, intent and presentation
// components the locomotion systems operate on.
func CreateAvatar(ecs *ecs.ECS, engine physics.Engine, spawn mgl64.Vec3) (*donburi.Entry, error) {
	body, err := engine.CreateCapsuleBody(cfg.Avatar.CapsuleRadius, cfg.Avatar.CapsuleHeight, cfg.Avatar.Mass)
	if err != nil {
		return nil, fmt.Errorf("create capsule body: %w", err)
	}
	if err := engine.AttachAuxiliarySphere(body, cfg.Avatar.HeadSphereRadius); err != nil {
		engine.RemoveBody(body)
		return nil, fmt.Errorf("attach head sphere: %w", err)
	}

	// Spawned in the air, so start with airborne friction.
	engine.SetFrictionCombine(body, physics.CombineMin)
	engine.SetGlobalPose(body, physics.Pose{Position: spawn, Rotation: mgl64.QuatIdent()})

	avatar := archetypes.Avatar.Spawn(ecs)
	components.Avatar.SetValue(avatar, components.AvatarData{
		Body:   body,
		Radius: cfg.Avatar.CapsuleRadius,
		Height: cfg.Avatar.CapsuleHeight,
		Mass:   cfg.Avatar.Mass,
	})
	components.Pose.SetValue(avatar, components.PoseData{
		Position: spawn,
		Rotation: mgl64.QuatIdent(),
	})
	components.Controller.SetValue(avatar, components.ControllerData{
		GroundNormal: gamemath.Up,
		Combine:      physics.CombineMin,
		Support:      physics.NoActor,
	})
	components.PlatformRide.SetValue(avatar, components.PlatformRideData{
		Support:  physics.NoActor,
		PrevPose: physics.IdentityPose(),
	})
	return avatar, nil
}
