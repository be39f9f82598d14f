package factory

import (
	"github.com/automoto/coinhop/archetypes"
	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its sprite center at x,y. rules are the
// collision rules the scene variant installs.
func CreatePlayer(ecs *ecs.ECS, x, y float64, rules ...components.CollisionRule) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := float64(cfg.Player.FrameWidth), float64(cfg.Player.FrameHeight)
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvPlayer)
	addToSpace(ecs, player, obj)

	components.Player.SetValue(player, components.PlayerData{
		MoveState: cfg.MoveIdle,
		SpawnX:    x,
		SpawnY:    y,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:            cfg.Physics.Gravity,
		MaxVelX:            cfg.Player.MaxVelX,
		MaxVelY:            cfg.Physics.MaxFallSpeed,
		AllowGravity:       true,
		CollideWorldBounds: true,
	})
	components.Contacts.SetValue(player, components.ContactsData{
		Current:  make(map[*resolv.Object]bool),
		Previous: make(map[*resolv.Object]bool),
	})
	components.CollisionRules.SetValue(player, components.CollisionRulesData{Rules: rules})
	components.Animation.Set(player, GenerateAnimations("player"))

	return player
}
