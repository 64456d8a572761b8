package systems

import (
	"testing"

	"github.com/wandermere/verse/components"
	cfg "github.com/wandermere/verse/config"
	"github.com/wandermere/verse/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestApplySavedSettingsMapsAllFields(t *testing.T) {
	orig := cfg.Camera
	defer func() { cfg.Camera = orig }()

	ApplySavedSettings(&SavedSettings{
		Sensitivity: 0.004,
		InvertY:     true,
		Zoom:        3.5,
	})

	if cfg.Camera.Sensitivity != 0.004 {
		t.Errorf("Sensitivity = %v, want 0.004", cfg.Camera.Sensitivity)
	}
	if !cfg.Camera.InvertY {
		t.Error("InvertY not applied")
	}
	if cfg.Camera.StartZoom != 3.5 {
		t.Errorf("StartZoom = %v, want 3.5", cfg.Camera.StartZoom)
	}
}

func TestApplySavedSettingsClampsZoom(t *testing.T) {
	orig := cfg.Camera
	defer func() { cfg.Camera = orig }()

	ApplySavedSettings(&SavedSettings{Zoom: cfg.Camera.ZoomMax * 10})
	if cfg.Camera.StartZoom != cfg.Camera.ZoomMax {
		t.Errorf("StartZoom = %v, want clamp to %v", cfg.Camera.StartZoom, cfg.Camera.ZoomMax)
	}

	cfg.Camera = orig
	ApplySavedSettings(&SavedSettings{Zoom: 0})
	if cfg.Camera.StartZoom != orig.StartZoom {
		t.Errorf("zero zoom overwrote StartZoom: %v", cfg.Camera.StartZoom)
	}
}

func TestCameraStartsAtSavedZoom(t *testing.T) {
	orig := cfg.Camera
	defer func() { cfg.Camera = orig }()

	cfg.Camera.StartZoom = 4
	e := ecs.NewECS(donburi.NewWorld())
	cam := components.Camera.Get(factory.CreateCamera(e))
	if cam.Zoom != 4 || cam.TargetZoom != 4 {
		t.Errorf("camera zoom = %v/%v, want 4/4", cam.Zoom, cam.TargetZoom)
	}

	cfg.Camera.StartZoom = 0
	e = ecs.NewECS(donburi.NewWorld())
	cam = components.Camera.Get(factory.CreateCamera(e))
	mid := (cfg.Camera.ZoomMin + cfg.Camera.ZoomMax) / 2
	if cam.Zoom != mid {
		t.Errorf("camera zoom = %v, want range middle %v", cam.Zoom, mid)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	if err := InitPersistence(); err != nil {
		t.Skipf("persistence unavailable: %v", err)
	}
	prev, _ := LoadSettings()
	defer func() {
		if prev != nil {
			SaveSettings(prev)
		}
	}()

	want := SavedSettings{
		Sensitivity: 0.004,
		InvertY:     true,
		Zoom:        3.5,
		PlayerName:  "drifter",
	}
	if err := SaveSettings(&want); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	got, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if got == nil {
		t.Fatal("LoadSettings returned nothing after a save")
	}
	if *got != want {
		t.Errorf("round trip = %+v, want %+v", *got, want)
	}
}
