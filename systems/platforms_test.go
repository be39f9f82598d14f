package systems

import (
	"testing"

	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/systems/factory"
	"github.com/yohamta/donburi"
)

func TestPatrolVelocity(t *testing.T) {
	p := &components.PlatformData{MinX: 440, MaxX: 550, Speed: 40}
	tests := []struct {
		x, vel, want float64
	}{
		{550, 100, -40},
		{551, -40, -40},
		{500, 100, 100},
		{500, -40, -40},
		{440, -40, 40},
		{439.5, -40, 40},
	}
	for _, tt := range tests {
		if got := PatrolVelocity(tt.x, tt.vel, p); got != tt.want {
			t.Errorf("PatrolVelocity(%v, %v) = %v, want %v", tt.x, tt.vel, got, tt.want)
		}
	}
}

func TestPlatformsPatrolBetweenBounds(t *testing.T) {
	e, _ := newTestScene(t, cfg.VariantBasic)
	specs := []cfg.PlatformSpec{
		cfg.Platforms.Spawns[0],
		{X: 100, Y: 20, MinX: 100, MaxX: 200},
	}
	for _, spec := range specs {
		factory.CreateMovingPlatform(e, spec)
	}

	// a platform may pass a bound by at most one step at its fastest speed
	slack := cfg.Platforms.InitialSpeed*cfg.Physics.StepSeconds + 1e-9
	reachedMin := map[float64]bool{}
	reachedMax := map[float64]bool{}

	for frame := 0; frame < 60*20; frame++ {
		UpdatePlatforms(e)
		UpdatePhysics(e)

		components.Platform.Each(e.World, func(entry *donburi.Entry) {
			x := components.Object.Get(entry).X
			p := components.Platform.Get(entry)
			if x < p.MinX-slack || x > p.MaxX+slack {
				t.Fatalf("frame %d: platform at %v outside [%v, %v]", frame, x, p.MinX, p.MaxX)
			}
			if x <= p.MinX {
				reachedMin[p.MinX] = true
			}
			if x >= p.MaxX {
				reachedMax[p.MinX] = true
			}
		})
	}
	for _, spec := range specs {
		if !reachedMin[spec.MinX] || !reachedMax[spec.MinX] {
			t.Errorf("platform %+v did not patrol both bounds", spec)
		}
	}
}

func TestPlatformBodyIsKinematic(t *testing.T) {
	e, _ := newTestScene(t, cfg.VariantBasic)
	spec := cfg.PlatformSpec{X: 100, Y: 20, MinX: 100, MaxX: 200}
	entry := factory.CreateMovingPlatform(e, spec)

	physics := components.Physics.Get(entry)
	if !physics.Immovable || physics.AllowGravity {
		t.Fatalf("platform body = %+v, want immovable without gravity", physics)
	}
	if physics.MaxVelX != 0 || physics.MaxVelY != 0 {
		t.Errorf("platform carries velocity limits it never uses: %+v", physics)
	}

	UpdatePhysics(e)
	want := spec.X + cfg.Platforms.InitialSpeed*cfg.Physics.StepSeconds
	if x := components.Object.Get(entry).X; !near(x, want) {
		t.Errorf("platform x = %v, want %v", x, want)
	}
	if y := components.Object.Get(entry).Y; y != spec.Y {
		t.Errorf("platform y = %v, want %v", y, spec.Y)
	}
}
