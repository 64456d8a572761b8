package systems

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/wandermere/verse/components"
	"github.com/wandermere/verse/network"
	"github.com/wandermere/verse/shared/netconfig"
	"github.com/wandermere/verse/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug renders the controller state overlay. Proper world rendering is
// a separate collaborator; this overlay is the client's only draw output.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "fps %.0f  tps %.0f\n", ebiten.ActualFPS(), ebiten.ActualTPS())

	spaceEntry, ok := components.Space.First(e.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		if space.Client != nil {
			fmt.Fprintf(&sb, "net %s id=%d\n", clientStateName(space.Client.State()), space.Client.NetworkID())
		}
	}

	tags.Avatar.Each(e.World, func(entry *donburi.Entry) {
		ctrl := components.Controller.Get(entry)
		intent := components.Intent.Get(entry)
		pose := components.Pose.Get(entry)
		emote := netconfig.EmoteFor(ctrl.Jumping || ctrl.Jumped, ctrl.Falling, intent.Moving, intent.Running)
		fmt.Fprintf(&sb, "pos %.2f %.2f %.2f  %s\n",
			pose.Position.X(), pose.Position.Y(), pose.Position.Z(), emote)
		fmt.Fprintf(&sb, "grounded=%v slip=%v angle=%.1f fall=%.2fs ride=%v\n",
			ctrl.Grounded, ctrl.Slipping, ctrl.GroundAngleDeg, ctrl.FallTimer,
			components.PlatformRide.Get(entry).Active)
	})

	if camEntry, ok := components.Camera.First(e.World); ok {
		cam := components.Camera.Get(camEntry)
		fmt.Fprintf(&sb, "cam yaw=%.2f pitch=%.2f zoom=%.1f", cam.Yaw, cam.Pitch, cam.Zoom)
	}

	ebitenutil.DebugPrint(screen, sb.String())
}

func clientStateName(s network.ClientState) string {
	switch s {
	case network.StateConnecting:
		return "connecting"
	case network.StateConnected:
		return "connected"
	case network.StateJoinedSpace:
		return "joined"
	case network.StateError:
		return "error"
	default:
		return "offline"
	}
}
