package archetypes

import (
	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Tile = newArchetype(
		tags.Tile,
		components.Object,
	)
	MovingPlatform = newArchetype(
		tags.Platform,
		components.Platform,
		components.Object,
		components.Physics,
		components.Sprite,
	)
	Coin = newArchetype(
		tags.Coin,
		components.Object,
		components.Sprite,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Animation,
		components.Physics,
		components.Contacts,
		components.CollisionRules,
	)
	Lives = newArchetype(
		components.Lives,
		components.HUDText,
	)
	Emitter = newArchetype(
		components.Emitter,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
