package systems

import (
	"math"

	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	// Largest distance a body travels per collision query, half a cell so
	// the broadphase never skips a tile.
	maxSubStep = 9.0
	epsilon    = 1e-6
)

// UpdatePhysics integrates every body for one fixed step. Immovable bodies
// move first so that their riders can be carried along.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := cfg.Physics.StepSeconds
	boundsW, boundsH := levelBounds(ecs)

	carry := make(map[*resolv.Object]float64)
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if !physics.Immovable {
			return
		}
		obj := components.Object.Get(e)
		physics.DeltaX = physics.VelX * dt
		physics.DeltaY = physics.VelY * dt
		obj.X += physics.DeltaX
		obj.Y += physics.DeltaY
		obj.Update()
		carry[obj.Object] = physics.DeltaX
	})

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if physics.Immovable {
			return
		}
		var contacts *components.ContactsData
		if e.HasComponent(components.Contacts) {
			contacts = components.Contacts.Get(e)
			contacts.Begin()
		}
		obj := components.Object.Get(e).Object

		startX, startY := obj.X, obj.Y
		if physics.Ground != nil {
			if dx := carry[physics.Ground]; dx != 0 {
				moveAxis(obj, dx, true, contacts)
			}
		}

		IntegrateVelocity(physics, dt)

		physics.BlockedDown = false
		physics.Ground = nil

		if hit, _ := moveAxis(obj, physics.VelX*dt, true, contacts); hit {
			physics.VelX = 0
		}
		hit, ground := moveAxis(obj, physics.VelY*dt, false, contacts)
		if hit {
			if physics.VelY > 0 {
				physics.BlockedDown = true
				physics.Ground = ground
			}
			physics.VelY = 0
		}

		if physics.CollideWorldBounds && boundsW > 0 && boundsH > 0 {
			clampToWorld(obj, physics, boundsW, boundsH)
		}
		physics.DeltaX = obj.X - startX
		physics.DeltaY = obj.Y - startY
	})
}

// IntegrateVelocity applies acceleration or drag, then gravity, then the
// velocity limits.
func IntegrateVelocity(p *components.PhysicsData, dt float64) {
	if p.AccelX != 0 {
		p.VelX += p.AccelX * dt
	} else if p.DragX != 0 {
		drag := p.DragX * dt
		switch {
		case p.VelX-drag > 0:
			p.VelX -= drag
		case p.VelX+drag < 0:
			p.VelX += drag
		default:
			p.VelX = 0
		}
	}
	if p.AllowGravity {
		p.VelY += p.Gravity * dt
	}
	if p.MaxVelX > 0 {
		p.VelX = math.Max(-p.MaxVelX, math.Min(p.MaxVelX, p.VelX))
	}
	if p.MaxVelY > 0 {
		p.VelY = math.Max(-p.MaxVelY, math.Min(p.MaxVelY, p.VelY))
	}
}

// moveAxis moves obj by d along one axis in sub-steps, stopping flush
// against the first blocking body. It reports whether it was stopped and the
// body it stopped against.
func moveAxis(obj *resolv.Object, d float64, horizontal bool, contacts *components.ContactsData) (bool, *resolv.Object) {
	for d != 0 {
		step := math.Max(-maxSubStep, math.Min(maxSubStep, d))
		d -= step

		var dx, dy float64
		if horizontal {
			dx = step
		} else {
			dy = step
		}

		var candidates []*resolv.Object
		var spans []span
		if check := obj.Check(dx, dy, tags.Blocking...); check != nil {
			for _, o := range check.Objects {
				if horizontal && overlaps(obj.Y, obj.H, o.Y, o.H) {
					candidates = append(candidates, o)
					spans = append(spans, span{o.X, o.X + o.W})
				}
				if !horizontal && overlaps(obj.X, obj.W, o.X, o.W) {
					candidates = append(candidates, o)
					spans = append(spans, span{o.Y, o.Y + o.H})
				}
			}
		}

		var mover span
		if horizontal {
			mover = span{obj.X, obj.X + obj.W}
		} else {
			mover = span{obj.Y, obj.Y + obj.H}
		}
		travel, hit := sweep(mover, step, spans)
		if horizontal {
			obj.X += travel
		} else {
			obj.Y += travel
		}
		obj.Update()

		if len(hit) > 0 {
			if contacts != nil {
				for _, i := range hit {
					contacts.Touch(candidates[i])
				}
			}
			return true, candidates[hit[0]]
		}
	}
	return false, nil
}

type span struct {
	lo, hi float64
}

// sweep returns how far mover can travel by d before meeting one of the
// blockers ahead of it, and the indexes of the blockers met at that
// distance. Blockers already overlapping mover are ignored so a body can
// always leave them.
func sweep(mover span, d float64, blockers []span) (float64, []int) {
	if d == 0 {
		return 0, nil
	}
	best := math.Abs(d)
	var hit []int
	for i, b := range blockers {
		var gap float64
		if d > 0 {
			if b.lo < mover.hi-epsilon {
				continue
			}
			gap = b.lo - mover.hi
		} else {
			if b.hi > mover.lo+epsilon {
				continue
			}
			gap = mover.lo - b.hi
		}
		gap = math.Max(gap, 0)
		switch {
		case gap < best-epsilon:
			best = gap
			hit = append(hit[:0], i)
		case gap <= best+epsilon:
			best = math.Min(best, gap)
			hit = append(hit, i)
		}
	}
	return math.Copysign(best, d), hit
}

// overlaps reports whether [a, a+al) and [b, b+bl) share more than an edge.
func overlaps(a, al, b, bl float64) bool {
	return a < b+bl-epsilon && b < a+al-epsilon
}

func clampToWorld(obj *resolv.Object, p *components.PhysicsData, w, h float64) {
	moved := false
	if obj.X < 0 {
		obj.X, p.VelX, moved = 0, 0, true
	} else if obj.X+obj.W > w {
		obj.X, p.VelX, moved = w-obj.W, 0, true
	}
	if obj.Y < 0 {
		obj.Y, p.VelY, moved = 0, 0, true
	} else if obj.Y+obj.H >= h {
		obj.Y, moved = h-obj.H, true
		p.VelY = 0
		p.BlockedDown = true
	}
	if moved {
		obj.Update()
	}
}

func levelBounds(ecs *ecs.ECS) (float64, float64) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return 0, 0
	}
	level := components.Level.Get(entry).CurrentLevel
	if level == nil {
		return 0, 0
	}
	return float64(level.Width), float64(level.Height)
}
