package components

import "github.com/yohamta/donburi"

// SettingsData holds per-scene toggles (singleton component)
type SettingsData struct {
	Debug bool // draw collider outlines
}

var Settings = donburi.NewComponentType[SettingsData]()
