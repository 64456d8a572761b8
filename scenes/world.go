package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leap-fish/necs/esync"
	"github.com/wandermere/verse/archetypes"
	"github.com/wandermere/verse/components"
	cfg "github.com/wandermere/verse/config"
	"github.com/wandermere/verse/network"
	"github.com/wandermere/verse/physics"
	"github.com/wandermere/verse/shared/netcomponents"
	"github.com/wandermere/verse/systems"
	"github.com/wandermere/verse/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs the space: a fixed-rate physics phase inside an
// accumulator, then the variable-rate render phase. Both phases share the
// host thread; ordering within a tick is the call sequence below.
type WorldScene struct {
	ecs    *ecs.ECS
	engine physics.Engine
	client *network.Client

	// Setup, when set before the first Update, populates the world with
	// space-specific entities (platform drives and the like).
	Setup func(*ecs.ECS)

	once        sync.Once
	accumulator float64
	lastTick    time.Time
	presentIDs  map[esync.NetworkId]bool
}

func NewWorldScene(engine physics.Engine, client *network.Client) *WorldScene {
	return &WorldScene{
		engine:     engine,
		client:     client,
		presentIDs: make(map[esync.NetworkId]bool),
	}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)

	now := time.Now()
	frameDelta := now.Sub(ws.lastTick).Seconds()
	ws.lastTick = now
	if frameDelta > 0.25 {
		// Resumed from a stall; do not replay the gap.
		frameDelta = 0.25
	}

	spaceEntry, ok := components.Space.First(ws.ecs.World)
	if !ok {
		return
	}
	components.Space.Get(spaceEntry).FrameDelta = frameDelta

	// Physics phase: zero, one or several fixed steps this frame.
	ws.accumulator += frameDelta
	step := cfg.Physics.FixedStep
	for i := 0; ws.accumulator >= step; i++ {
		if i >= cfg.Physics.MaxStepsPerFrame {
			ws.accumulator = 0
			break
		}
		systems.StepDrives(ws.ecs)
		systems.StepLocomotion(ws.ecs)
		systems.StepPlatforms(ws.ecs)
		systems.StepVelocity(ws.ecs)
		ws.engine.Step(step)
		systems.StepPresentation(ws.ecs)
		ws.accumulator -= step
	}

	// Render phase: input, binder, remote interpolation, network in/out.
	if ws.client != nil {
		if snap := ws.client.LatestSnapshot(); snap != nil {
			ws.applySnapshot(*snap)
		}
	}
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

// CameraZoom returns the camera's target distance for settings persistence.
// ok is false before the first Update builds the world.
func (ws *WorldScene) CameraZoom() (float64, bool) {
	if ws.ecs == nil {
		return 0, false
	}
	entry, ok := components.Camera.First(ws.ecs.World)
	if !ok {
		return 0, false
	}
	return components.Camera.Get(entry).TargetZoom, true
}

func (ws *WorldScene) configure() {
	ws.lastTick = time.Now()
	ws.ecs = ecs.NewECS(donburi.NewWorld())

	factory.CreateSpace(ws.ecs, ws.engine, ws.client)
	factory.CreateCamera(ws.ecs)
	if _, err := factory.CreateAvatar(ws.ecs, ws.engine, mgl64.Vec3{0, 2, 0}); err != nil {
		panic("failed to create avatar: " + err.Error())
	}
	if ws.Setup != nil {
		ws.Setup(ws.ecs)
	}

	ws.ecs.AddSystem(systems.UpdateInput)
	ws.ecs.AddSystem(systems.UpdateBinder)
	ws.ecs.AddSystem(systems.UpdateNetInterp)
	ws.ecs.AddSystem(systems.UpdateEmitter)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
}

// applySnapshot mirrors the server's avatar set into local remote-avatar
// entities. The local avatar is client-authoritative and skipped.
func (ws *WorldScene) applySnapshot(snapshot esync.WorldSnapshot) {
	world := ws.ecs.World
	myNetID := ws.client.NetworkID()

	clear(ws.presentIDs)

	for _, ent := range snapshot {
		ws.presentIDs[ent.Id] = true
		if ent.Id == myNetID {
			continue
		}

		var netPose *netcomponents.NetPoseData
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				continue
			}
			if v, ok := instance.(netcomponents.NetPoseData); ok {
				netPose = &v
			}
		}
		if netPose == nil {
			continue
		}

		entity := esync.FindByNetworkId(world, ent.Id)
		if !world.Valid(entity) {
			entry := archetypes.RemoteAvatar.Spawn(ws.ecs)
			entry.AddComponent(esync.NetworkIdComponent)
			esync.NetworkIdComponent.SetValue(entry, ent.Id)
			entry.AddComponent(netcomponents.NetPose)
			entity = entry.Entity()
		}
		entry := world.Entry(entity)
		netcomponents.NetPose.SetValue(entry, *netPose)

		pos := mgl64.Vec3{netPose.X, netPose.Y, netPose.Z}
		rot := mgl64.Quat{W: netPose.QW, V: mgl64.Vec3{netPose.QX, netPose.QY, netPose.QZ}}

		interp := components.NetInterp.Get(entry)
		pose := components.Pose.Get(entry)
		if !interp.Initialized {
			// First sight of this avatar: place it, no blend.
			pose.Position = pos
			pose.Rotation = rot
			interp.PrevPos, interp.TargetPos = pos, pos
			interp.PrevRot, interp.TargetRot = rot, rot
			interp.T = 1
			interp.Initialized = true
		} else {
			interp.PrevPos = pose.Position
			interp.PrevRot = pose.Rotation
			interp.TargetPos = pos
			interp.TargetRot = rot
			interp.T = 0
		}
	}

	esync.NetworkEntityQuery.Each(world, func(entry *donburi.Entry) {
		id := esync.GetNetworkId(entry)
		if id == nil {
			return
		}
		if !ws.presentIDs[*id] {
			entry.Remove()
		}
	})
}
