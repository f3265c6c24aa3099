package systems

import (
	"github.com/automoto/lozo/components"
	cfg "github.com/automoto/lozo/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, creating it
// from the configured defaults if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug:      cfg.Debug.Overlay,
			ScaleIndex: cfg.Settings.DefaultScaleIndex,
		})
	}
	return components.Settings.Get(entry)
}

// UpdateSettings handles the F1/F11/F2 toggles and saves after each change.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)
	changed := false

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		changed = true
	}

	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		changed = true
	}

	if GetAction(input, cfg.ActionCycleWindowScale).JustPressed && !settings.Fullscreen {
		settings.ScaleIndex = (settings.ScaleIndex + 1) % len(cfg.Settings.WindowScales)
		applyWindowScale(settings.ScaleIndex)
		changed = true
	}

	if changed {
		SaveCurrentSettings(settings)
	}
}

func applyWindowScale(index int) {
	w, h := scaleFor(index).Size(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowSize(w, h)
}

// scaleFor returns the configured window scale, clamped to the valid range.
func scaleFor(index int) cfg.WindowScale {
	if index < 0 || index >= len(cfg.Settings.WindowScales) {
		index = cfg.Settings.DefaultScaleIndex
	}
	return cfg.Settings.WindowScales[index]
}
