package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PhysicsData is an arcade-style body. Velocities are in pixels per second.
type PhysicsData struct {
	VelX   float64
	VelY   float64
	AccelX float64

	// DragX pulls VelX toward zero, only while AccelX is zero
	DragX   float64
	Gravity float64

	MaxVelX float64
	MaxVelY float64

	BlockedDown bool
	Ground      *resolv.Object // what the body stood on after the last step

	Immovable          bool
	AllowGravity       bool
	CollideWorldBounds bool

	// Displacement applied during the last step, read by riders
	DeltaX float64
	DeltaY float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
