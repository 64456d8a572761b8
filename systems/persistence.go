package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
	cfg "github.com/wandermere/verse/config"
	"github.com/wandermere/verse/mathutil"
)

// SavedSettings represents the settings data stored on disk.
type SavedSettings struct {
	Sensitivity float64 `json:"sensitivity"`
	InvertY     bool    `json:"invertY"`
	Zoom        float64 `json:"zoom"`
	PlayerName  string  `json:"playerName"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "verse",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. Missing or unreadable settings are
// not errors; defaults apply.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk.
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettings writes loaded settings into the live camera config.
// Called during startup, before any scene exists. PlayerName is resolved by
// the caller; it has no config home.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.Sensitivity > 0 {
		cfg.Camera.Sensitivity = saved.Sensitivity
	}
	cfg.Camera.InvertY = saved.InvertY
	if saved.Zoom > 0 {
		cfg.Camera.StartZoom = mathutil.ClampFloat(saved.Zoom, cfg.Camera.ZoomMin, cfg.Camera.ZoomMax)
	}
}
