package components

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// Particle is one live particle of an emitter, in world space.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Frame  string
	Scale  float32
	Alpha  float32
	scale  *gween.Tween
	alpha  *gween.Tween
}

// NewParticle tweens scale and alpha linearly over lifespan seconds.
func NewParticle(x, y, vx, vy float64, frame string, scale, alpha [2]float32, lifespan float32, easing ease.TweenFunc) Particle {
	return Particle{
		X: x, Y: y, VX: vx, VY: vy,
		Frame: frame,
		Scale: scale[0],
		Alpha: alpha[0],
		scale: gween.New(scale[0], scale[1], lifespan, easing),
		alpha: gween.New(alpha[0], alpha[1], lifespan, easing),
	}
}

// Step advances the particle by dt seconds and reports whether it expired.
func (p *Particle) Step(dt float64) bool {
	p.X += p.VX * dt
	p.Y += p.VY * dt
	var done bool
	p.Scale, done = p.scale.Update(float32(dt))
	p.Alpha, _ = p.alpha.Update(float32(dt))
	return done
}

type EmitterData struct {
	On bool

	Atlas  string
	Frames []string
	next   int

	// Follow target, offset from the target's center
	Follow     *donburi.Entry
	FollowOffX float64
	FollowOffY float64
	X, Y       float64

	SpeedX, SpeedY float64

	FrequencyMs float64 // 0 emits Quantity every step
	Quantity    int
	LifespanMs  float64
	MaxAlive    int
	sinceEmit   float64

	ScaleStart, ScaleEnd float32
	AlphaStart, AlphaEnd float32

	Particles []Particle
}

func (e *EmitterData) Start() { e.On = true }
func (e *EmitterData) Stop()  { e.On = false }

// StartFollow attaches the emitter to target's center plus an offset.
func (e *EmitterData) StartFollow(target *donburi.Entry, offX, offY float64) {
	e.Follow = target
	e.FollowOffX = offX
	e.FollowOffY = offY
}

func (e *EmitterData) SetParticleSpeed(x, y float64) {
	e.SpeedX = x
	e.SpeedY = y
}

// NextFrame cycles through the configured frames.
func (e *EmitterData) NextFrame() string {
	if len(e.Frames) == 0 {
		return ""
	}
	f := e.Frames[e.next%len(e.Frames)]
	e.next++
	return f
}

// Due advances the emission clock and returns how many particles to emit.
func (e *EmitterData) Due(dtMs float64) int {
	if !e.On {
		e.sinceEmit = 0
		return 0
	}
	if e.FrequencyMs <= 0 {
		return e.Quantity
	}
	e.sinceEmit += dtMs
	n := 0
	for e.sinceEmit >= e.FrequencyMs {
		e.sinceEmit -= e.FrequencyMs
		n += e.Quantity
	}
	return n
}

var Emitter = donburi.NewComponentType[EmitterData]()
