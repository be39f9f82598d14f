package config

// SettingsConfig contains the persisted-settings defaults and steps
type SettingsConfig struct {
	AppName     string
	ItemKey     string
	VolumeSteps []float64
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:     "coinhop",
		ItemKey:     "settings",
		VolumeSteps: []float64{0, 0.25, 0.5, 0.75, 1.0},
	}
}
