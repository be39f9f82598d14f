package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDTextData is screen-fixed text drawn above the world.
type HUDTextData struct {
	Text  string
	X, Y  float64
	Scale float32
	Pulse *gween.Tween // nil when idle
}

var HUDText = donburi.NewComponentType[HUDTextData]()
