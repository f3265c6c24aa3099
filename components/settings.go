package components

import "github.com/yohamta/donburi"

// SettingsData holds the display settings that are saved between runs.
type SettingsData struct {
	Debug      bool
	Fullscreen bool
	ScaleIndex int
}

var Settings = donburi.NewComponentType[SettingsData]()
