package archetypes

import (
	"github.com/wandermere/verse/components"
	cfg "github.com/wandermere/verse/config"
	"github.com/wandermere/verse/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Avatar = newArchetype(
		tags.Avatar,
		components.Avatar,
		components.Pose,
		components.Controller,
		components.PlatformRide,
		components.Intent,
		components.Emitter,
	)
	RemoteAvatar = newArchetype(
		tags.RemoteAvatar,
		components.Pose,
		components.NetInterp,
	)
	MovingPlatform = newArchetype(
		tags.Platform,
		components.Drive,
	)
	Camera = newArchetype(
		components.Camera,
		components.Input,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
