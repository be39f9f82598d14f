package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/coinhop/assets"
	cfg "github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/systems"
	"github.com/automoto/coinhop/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene is one run of a level variant. Restarting replaces the
// whole scene with a fresh instance.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	registry     *assets.Registry
	variant      cfg.Variant
	context      *systems.SceneContext
	held         [cfg.ActionCount]bool // actions already down when the scene starts
	once         sync.Once
}

// NewPlatformerScene creates a gameplay scene for the given level variant
func NewPlatformerScene(sc SceneChanger, registry *assets.Registry, variant cfg.Variant) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, registry: registry, variant: variant}
}

func (ps *PlatformerScene) Name() string { return "platformerScene" }

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if restart, reason := ps.context.RestartRequested(); restart {
		log.Printf("%s: restarting (%s)", ps.Name(), reason)
		ps.sceneChanger.ChangeScene(ps.restarted())
	}
}

// restarted returns a fresh instance of this scene. Keys held now stay held
// in it, so they are not read as new presses on its first frame.
func (ps *PlatformerScene) restarted() *PlatformerScene {
	next := NewPlatformerScene(ps.sceneChanger, ps.registry, ps.variant)
	next.held = systems.HeldActions(ps.ecs)
	return next
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ps.context = systems.NewSceneContext(ps.registry, ps.variant)
	features := ps.context.Features

	tilemap, err := ps.registry.Tilemap(cfg.Levels.TilemapKey)
	if err != nil {
		panic(err)
	}
	level, err := assets.ParseLevel(cfg.Levels.TilemapKey, tilemap, features)
	if err != nil {
		panic(err)
	}
	background, err := assets.RenderLevel(tilemap, ps.registry.FS(), level.Layers)
	if err != nil {
		panic(err)
	}

	ps.ecs = ecs.NewECS(donburi.NewWorld())
	systems.SeedInput(ps.ecs, ps.held)

	ps.ecs.AddSystem(systems.UpdateInput)
	for _, system := range gameplaySystems(ps.context) {
		ps.ecs.AddSystem(system)
	}
	ps.ecs.AddSystem(systems.UpdateAudio)

	ps.ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ps.ecs.AddRenderer(cfg.Default, systems.NewDrawSprites(ps.context))
	ps.ecs.AddRenderer(cfg.Default, systems.NewDrawParticles(ps.context))
	ps.ecs.AddRenderer(cfg.Default, systems.NewDrawPlayer(ps.context))
	ps.ecs.AddRenderer(cfg.Default, systems.NewDrawDebug(ps.context))
	ps.ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	buildWorld(ps.ecs, ps.context, level, background)
}

// gameplaySystems returns the per-frame systems after input polling, in
// the order they must run.
func gameplaySystems(sc *systems.SceneContext) []ecs.System {
	return []ecs.System{
		systems.NewUpdateSceneKeys(sc),
		systems.NewUpdatePlayer(sc),
		systems.UpdatePlatforms,
		systems.UpdatePhysics,
		systems.NewUpdateCollisions(sc),
		systems.NewApplyDecisions(sc),
		systems.UpdateEmitters,
		systems.NewUpdateCamera(sc),
		systems.UpdateHUD,
	}
}

// buildWorld creates every entity of the level for the scene's feature set.
// background may be nil.
func buildWorld(e *ecs.ECS, sc *systems.SceneContext, level *assets.Level, background *ebiten.Image) {
	features := sc.Features

	factory.CreateLevel(e, level, background)
	factory.CreateSpace(e, level.Width, level.Height, cfg.Physics.CellSize, cfg.Physics.CellSize)

	for _, tile := range level.Tiles {
		factory.CreateTile(e, tile)
	}
	if features.Coins {
		for _, coin := range level.Coins {
			factory.CreateCoin(e, coin)
		}
	}

	sc.Player = factory.CreatePlayer(e, cfg.Player.SpawnX, cfg.Player.SpawnY, systems.PlayerRules(features)...)

	if features.WalkingVFX {
		sc.Emitter = factory.CreateWalkingEmitter(e)
	}
	if features.MovingPlatforms {
		for _, spec := range cfg.Platforms.Spawns {
			factory.CreateMovingPlatform(e, spec)
		}
	}
	if features.Lives {
		sc.LivesText = factory.CreateLivesCounter(e, cfg.Player.StartingLives)
	}

	camera := factory.CreateCamera(e, float64(level.Width), float64(level.Height), cfg.Player.SpawnX, cfg.Player.SpawnY)
	systems.SnapToEntry(camera, cfg.Player.SpawnX, cfg.Player.SpawnY)
}
