package systems

import (
	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEmitters moves emitters with their follow targets, ages live
// particles and emits new ones while an emitter is on.
func UpdateEmitters(ecs *ecs.ECS) {
	dt := cfg.Physics.StepSeconds
	components.Emitter.Each(ecs.World, func(e *donburi.Entry) {
		StepEmitter(components.Emitter.Get(e), dt)
	})
}

// StepEmitter advances one emitter by dt seconds.
func StepEmitter(em *components.EmitterData, dt float64) {
	if em.Follow != nil && em.Follow.Valid() && em.Follow.HasComponent(components.Object) {
		cx, cy := components.Object.Get(em.Follow).Center()
		em.X = cx + em.FollowOffX
		em.Y = cy + em.FollowOffY
	}

	alive := em.Particles[:0]
	for _, p := range em.Particles {
		if !p.Step(dt) {
			alive = append(alive, p)
		}
	}
	em.Particles = alive

	lifespan := float32(em.LifespanMs / 1000)
	for n := em.Due(dt * 1000); n > 0; n-- {
		if em.MaxAlive > 0 && len(em.Particles) >= em.MaxAlive {
			break
		}
		em.Particles = append(em.Particles, components.NewParticle(
			em.X, em.Y, em.SpeedX, em.SpeedY, em.NextFrame(),
			[2]float32{em.ScaleStart, em.ScaleEnd},
			[2]float32{em.AlphaStart, em.AlphaEnd},
			lifespan, ease.Linear,
		))
	}
}
