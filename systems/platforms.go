package systems

import (
	"github.com/automoto/coinhop/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms reverses each patrolling platform once it reaches a bound.
// Positions are not clamped, so a platform may pass a bound by one step.
func UpdatePlatforms(ecs *ecs.ECS) {
	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		physics := components.Physics.Get(e)
		physics.VelX = PatrolVelocity(obj.X, physics.VelX, components.Platform.Get(e))
	})
}

// PatrolVelocity returns the horizontal velocity of a platform whose left
// edge is at x.
func PatrolVelocity(x, velX float64, p *components.PlatformData) float64 {
	if x >= p.MaxX {
		return -p.Speed
	}
	if x <= p.MinX {
		return p.Speed
	}
	return velX
}
