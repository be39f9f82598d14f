package components

import "github.com/yohamta/donburi"

// PlatformData bounds a patrolling platform's left edge.
type PlatformData struct {
	MinX  float64
	MaxX  float64
	Speed float64 // patrol speed once a bound is reached
}

var Platform = donburi.NewComponentType[PlatformData]()
