package main

import (
	"flag"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/wandermere/verse/config"
	"github.com/wandermere/verse/network"
	"github.com/wandermere/verse/physics"
	"github.com/wandermere/verse/physics/physicstest"
	"github.com/wandermere/verse/scenes"
	"github.com/wandermere/verse/shared/protocol"
	"github.com/wandermere/verse/systems"
	"github.com/wandermere/verse/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	address := flag.String("address", "", "server address, empty runs offline")
	name := flag.String("name", "", "player display name, defaults to the saved name")
	configPath := flag.String("config", "verse.yaml", "path to config overrides")
	flag.Parse()

	if err := config.LoadOverrides(*configPath); err != nil {
		log.Fatalf("Failed to load config overrides: %v", err)
	}

	// Register network components for client-side deserialization
	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register network components: %v", err)
	}

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	var saved *systems.SavedSettings
	if s, err := systems.LoadSettings(); err == nil && s != nil {
		saved = s
		systems.ApplySavedSettings(saved)
	}

	playerName := *name
	if playerName == "" && saved != nil {
		playerName = saved.PlayerName
	}
	if playerName == "" {
		playerName = "wanderer"
	}

	var client *network.Client
	if *address != "" {
		client = network.NewClient()
		client.Connect(*address, config.Net.Version, playerName)
	}

	engine, setup := buildDemoSpace()
	scene := scenes.NewWorldScene(engine, client)
	scene.Setup = setup

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	runErr := ebiten.RunGame(&Game{scene: scene})

	settings := systems.SavedSettings{
		Sensitivity: config.Camera.Sensitivity,
		InvertY:     config.Camera.InvertY,
		Zoom:        config.Camera.StartZoom,
		PlayerName:  playerName,
	}
	if zoom, ok := scene.CameraZoom(); ok {
		settings.Zoom = zoom
	}
	if err := systems.SaveSettings(&settings); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}

	if runErr != nil {
		log.Fatal(runErr)
	}
}

// buildDemoSpace assembles the built-in flat world: a static ground plane
// and a tween-driven elevator. Real deployments plug in an external engine
// with loaded space geometry instead.
func buildDemoSpace() (physics.Engine, func(*ecs.ECS)) {
	engine := physicstest.New()

	ground := engine.AddActor(physics.KindStatic, physics.LayerEnvironment, physics.IdentityPose())
	engine.AddGroundPlane(ground.ID, 0, mgl64.Vec3{0, 1, 0}, physics.LayerEnvironment)

	elevatorPose := physics.IdentityPose()
	elevatorPose.Position = mgl64.Vec3{6, 0.5, 0}
	elevator := engine.AddActor(physics.KindKinematic, physics.LayerEnvironment, elevatorPose)
	engine.AddGroundPlane(elevator.ID, 0, mgl64.Vec3{0, 1, 0}, physics.LayerEnvironment)

	ferryPose := physics.IdentityPose()
	ferryPose.Position = mgl64.Vec3{-6, 0.5, 0}
	ferry := engine.AddActor(physics.KindKinematic, physics.LayerEnvironment, ferryPose)
	engine.AddGroundPlane(ferry.ID, 0, mgl64.Vec3{0, 1, 0}, physics.LayerEnvironment)

	setup := func(e *ecs.ECS) {
		factory.CreateElevator(e, elevator.ID, elevatorPose.Position, mgl64.Vec3{0, 1, 0}, 4, 8)
		factory.CreateCarousel(e, ferry.ID, ferryPose.Position, mgl64.Vec3{0, 0, 1}, 6, 10)
	}
	return engine, setup
}
