package config

// WindowScale is a window size option, as a fraction of the game resolution
type WindowScale struct {
	Numerator   int
	Denominator int
	Label       string
}

// Size returns the window size for a w×h game resolution.
func (s WindowScale) Size(w, h int) (int, int) {
	return w * s.Numerator / s.Denominator, h * s.Numerator / s.Denominator
}

// SettingsConfig contains display settings options
type SettingsConfig struct {
	WindowScales       []WindowScale
	DefaultScaleIndex  int
	PersistenceAppName string
}

// Settings is the global display settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		WindowScales: []WindowScale{
			{Numerator: 2, Denominator: 3, Label: "small"},
			{Numerator: 1, Denominator: 1, Label: "normal"},
			{Numerator: 4, Denominator: 3, Label: "large"},
		},
		DefaultScaleIndex:  1,
		PersistenceAppName: "lozo",
	}
}
