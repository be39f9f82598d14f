package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // world point at the center of the view
	Zoom     float64

	// World bounds the view may not leave
	BoundsW float64
	BoundsH float64

	FollowLerp float64
	DeadzoneW  float64
	DeadzoneH  float64
}

var Camera = donburi.NewComponentType[CameraData]()
