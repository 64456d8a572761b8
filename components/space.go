package components

import (
	"github.com/wandermere/verse/network"
	"github.com/wandermere/verse/physics"
	"github.com/yohamta/donburi"
)

// SpaceData is a singleton carrying the handles every system needs: the
// physics engine the space runs on, the variable render-frame delta, and
// the server connection (nil in offline or headless worlds).
type SpaceData struct {
	Engine     physics.Engine
	FrameDelta float64 // seconds since the previous render frame
	Client     *network.Client
}

var Space = donburi.NewComponentType[SpaceData]()
