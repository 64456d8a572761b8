package factory

import (
	"github.com/wandermere/verse/archetypes"
	"github.com/wandermere/verse/components"
	"github.com/wandermere/verse/network"
	"github.com/wandermere/verse/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace spawns the singleton entity carrying the physics engine and
// server connection. Client may be nil for offline or test worlds.
func CreateSpace(ecs *ecs.ECS, engine physics.Engine, client *network.Client) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{
		Engine: engine,
		Client: client,
	})
	return space
}
