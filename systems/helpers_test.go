package systems

import (
	"math"
	"testing"

	"github.com/automoto/coinhop/assets"
	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const floorY = 200.0

// assetsLevel bounds the test world for bodies that collide with its edges.
var assetsLevel = assets.Level{Width: 720, Height: 360}

// newTestScene builds a small world: a solid floor along y=200 and the
// player at its spawn point.
func newTestScene(t *testing.T, variant cfg.Variant) (*ecs.ECS, *SceneContext) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	sc := NewSceneContext(nil, variant)

	factory.CreateSpace(e, 720, 360, cfg.Physics.CellSize, cfg.Physics.CellSize)
	for x := 0.0; x < 360; x += 18 {
		addTile(e, x, floorY, cfg.LayerSolid)
	}
	sc.Player = factory.CreatePlayer(e, cfg.Player.SpawnX, cfg.Player.SpawnY, PlayerRules(sc.Features)...)
	if sc.Features.Lives {
		sc.LivesText = factory.CreateLivesCounter(e, cfg.Player.StartingLives)
	}
	if sc.Features.WalkingVFX {
		sc.Emitter = factory.CreateWalkingEmitter(e)
	}
	return e, sc
}

func addTile(e *ecs.ECS, x, y float64, role cfg.LayerRole) *donburi.Entry {
	return factory.CreateTile(e, assets.LevelTile{X: x, Y: y, Width: 18, Height: 18, Role: role})
}

// placeOn puts the player's feet on the top edge of a surface at y, centered on x.
func placeOn(player *donburi.Entry, x, y float64) {
	obj := components.Object.Get(player)
	obj.SetCenter(x, y-obj.H/2)
}

// step runs the physics and collision systems for one frame.
func step(e *ecs.ECS, sc *SceneContext) {
	UpdatePhysics(e)
	NewUpdateCollisions(sc)(e)
	NewApplyDecisions(sc)(e)
}

func press(e *ecs.ECS, actions ...cfg.ActionID) {
	var current [cfg.ActionCount]bool
	for _, a := range actions {
		current[a] = true
	}
	SetInput(getOrCreateInput(e), current, components.InputKeyboard)
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
