package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/lozo/components"
	cfg "github.com/automoto/lozo/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug       bool `json:"debug"`
	WindowScale int  `json:"windowScale"`
	Fullscreen  bool `json:"fullscreen"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.PersistenceAppName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when persistence
// is unavailable or nothing has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
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

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the current settings from the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		Debug:       s.Debug,
		WindowScale: s.ScaleIndex,
		Fullscreen:  s.Fullscreen,
	})
}

// ApplySavedSettingsGlobal applies window settings before any scene exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	ebiten.SetFullscreen(saved.Fullscreen)
	if !saved.Fullscreen {
		applyWindowScale(saved.WindowScale)
	}
}

// ApplySavedSettings copies saved values into the scene's Settings component.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}

	settings := GetOrCreateSettings(e)
	settings.Debug = saved.Debug
	settings.Fullscreen = saved.Fullscreen
	settings.ScaleIndex = scaleIndex(saved.WindowScale)
}

func scaleIndex(i int) int {
	if i < 0 || i >= len(cfg.Settings.WindowScales) {
		return cfg.Settings.DefaultScaleIndex
	}
	return i
}
