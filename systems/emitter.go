package systems

import (
	"log"
	"time"

	"github.com/leap-fish/necs/esync"
	"github.com/wandermere/verse/components"
	cfg "github.com/wandermere/verse/config"
	"github.com/wandermere/verse/network"
	"github.com/wandermere/verse/shared/messages"
	"github.com/wandermere/verse/shared/netconfig"
	"github.com/wandermere/verse/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEmitter sends the local avatar's pose and emote at the configured
// send rate, independent of both the physics and render rates. Emission is
// fire-and-forget; a failed send is logged and the next tick tries again.
func UpdateEmitter(e *ecs.ECS) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	client := space.Client
	if client == nil || client.State() != network.StateJoinedSpace {
		return
	}

	interval := 1.0 / float64(cfg.Net.SendRate)

	tags.Avatar.Each(e.World, func(entry *donburi.Entry) {
		em := components.Emitter.Get(entry)
		if !emitDue(em, space.FrameDelta, interval) {
			return
		}

		msg := movementPayload(entry, client.NetworkID(), time.Now().UnixMilli())
		if err := client.SendMessage(msg); err != nil {
			log.Printf("[emitter] movement update dropped: %v", err)
		}
	})
}

// emitDue accumulates frame time and reports whether a send is due,
// resetting the accumulator when it is.
func emitDue(em *components.EmitterData, dt, interval float64) bool {
	em.Accum += dt
	if em.Accum < interval {
		return false
	}
	em.Accum = 0
	return true
}

func movementPayload(entry *donburi.Entry, id esync.NetworkId, now int64) messages.MovementUpdate {
	ctrl := components.Controller.Get(entry)
	intent := components.Intent.Get(entry)
	pose := components.Pose.Get(entry)

	emote := netconfig.EmoteFor(ctrl.Jumping || ctrl.Jumped, ctrl.Falling, intent.Moving, intent.Running)

	return messages.MovementUpdate{
		ID: id,
		Position: [3]float64{
			pose.Position.X(), pose.Position.Y(), pose.Position.Z(),
		},
		Rotation: [4]float64{
			pose.Rotation.V.X(), pose.Rotation.V.Y(), pose.Rotation.V.Z(), pose.Rotation.W,
		},
		Emote:     emote.String(),
		Timestamp: now,
	}
}
