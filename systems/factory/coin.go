package factory

import (
	"github.com/automoto/coinhop/archetypes"
	"github.com/automoto/coinhop/assets"
	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCoin adds a static coin body that only overlaps, never blocks.
func CreateCoin(ecs *ecs.ECS, c assets.CoinSpawn) *donburi.Entry {
	coin := archetypes.Coin.Spawn(ecs)
	addToSpace(ecs, coin, resolv.NewObject(c.X, c.Y, c.Width, c.Height, tags.ResolvCoin))
	components.Sprite.SetValue(coin, components.SpriteData{
		Sheet:  cfg.Levels.CoinSheet,
		Frames: []int{cfg.Levels.CoinFrame},
		Step:   c.Width,
	})
	return coin
}
