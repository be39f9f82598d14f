package systems

import (
	"testing"

	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newDustEmitter() *components.EmitterData {
	return &components.EmitterData{
		Frames:     []string{"a", "b"},
		Quantity:   1,
		LifespanMs: 350,
		MaxAlive:   64,
		ScaleStart: 0.03, ScaleEnd: 0.1,
		AlphaStart: 1, AlphaEnd: 0.1,
	}
}

func TestEmitterReachesSteadyState(t *testing.T) {
	em := newDustEmitter()
	em.Start()
	dt := 1.0 / 60
	for i := 0; i < 120; i++ {
		StepEmitter(em, dt)
	}
	// one particle per step living 350ms
	if n := len(em.Particles); n < 19 || n > 22 {
		t.Errorf("live particles = %d, want about 21", n)
	}

	for i := 1; i < len(em.Particles); i++ {
		if em.Particles[i].Frame == em.Particles[i-1].Frame {
			t.Fatalf("particles %d and %d share frame %q", i-1, i, em.Particles[i].Frame)
		}
	}
}

func TestEmitterParticlesFadeAndGrow(t *testing.T) {
	em := newDustEmitter()
	em.SetParticleSpeed(-10, 0)
	em.Start()
	StepEmitter(em, 1.0/60)
	em.Stop()
	for i := 0; i < 10; i++ {
		StepEmitter(em, 1.0/60)
	}
	if len(em.Particles) != 1 {
		t.Fatalf("particles = %d, want 1", len(em.Particles))
	}
	p := em.Particles[0]
	if p.Scale <= 0.03 || p.Alpha >= 1 {
		t.Errorf("particle scale %v alpha %v did not tween", p.Scale, p.Alpha)
	}
	if p.X >= 0 {
		t.Errorf("particle x = %v, want drift left", p.X)
	}
}

func TestEmitterStopDrains(t *testing.T) {
	em := newDustEmitter()
	em.Start()
	for i := 0; i < 30; i++ {
		StepEmitter(em, 1.0/60)
	}
	em.Stop()
	for i := 0; i < 30; i++ {
		StepEmitter(em, 1.0/60)
	}
	if len(em.Particles) != 0 {
		t.Errorf("particles = %d after stop, want 0", len(em.Particles))
	}
}

func TestEmitterMaxAlive(t *testing.T) {
	em := newDustEmitter()
	em.Quantity = 10
	em.MaxAlive = 15
	em.Start()
	for i := 0; i < 5; i++ {
		StepEmitter(em, 1.0/60)
	}
	if len(em.Particles) != 15 {
		t.Errorf("particles = %d, want capped at 15", len(em.Particles))
	}
}

func TestEmitterFollowsTarget(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 720, 360, cfg.Physics.CellSize, cfg.Physics.CellSize)
	player := factory.CreatePlayer(e, 100, 100)
	entry := factory.CreateWalkingEmitter(e)
	em := components.Emitter.Get(entry)
	em.StartFollow(player, 22, 7)
	em.Start()

	UpdateEmitters(e)
	if em.X != 122 || em.Y != 107 {
		t.Errorf("emitter at (%v, %v), want (122, 107)", em.X, em.Y)
	}
	if len(em.Particles) == 0 || em.Particles[0].X != 122 {
		t.Errorf("particles = %+v, want one spawned at the emitter", em.Particles)
	}
}
