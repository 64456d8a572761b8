package systems

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/wandermere/verse/components"
	cfg "github.com/wandermere/verse/config"
	"github.com/wandermere/verse/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateNetInterp eases remote avatars between server snapshots. Each
// snapshot restarts the blend; the blend completes over one send interval
// so remote avatars arrive just as the next snapshot lands.
func UpdateNetInterp(e *ecs.ECS) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	rate := float64(cfg.Net.SendRate)
	if space.Client != nil && space.Client.TickRate() > 0 {
		rate = float64(space.Client.TickRate())
	}

	tags.RemoteAvatar.Each(e.World, func(entry *donburi.Entry) {
		interp := components.NetInterp.Get(entry)
		if !interp.Initialized {
			return
		}
		interp.T += space.FrameDelta * rate
		if interp.T > 1 {
			interp.T = 1
		}

		pose := components.Pose.Get(entry)
		pose.Position = mgl64.Vec3{
			interp.PrevPos.X() + (interp.TargetPos.X()-interp.PrevPos.X())*interp.T,
			interp.PrevPos.Y() + (interp.TargetPos.Y()-interp.PrevPos.Y())*interp.T,
			interp.PrevPos.Z() + (interp.TargetPos.Z()-interp.PrevPos.Z())*interp.T,
		}
		pose.Rotation = mgl64.QuatSlerp(interp.PrevRot, interp.TargetRot, interp.T)
	})
}
