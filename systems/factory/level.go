package factory

import (
	"github.com/automoto/coinhop/archetypes"
	"github.com/automoto/coinhop/assets"
	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel stores the parsed level and its pre-rendered layers.
// background may be nil when nothing is drawn, as in tests.
func CreateLevel(ecs *ecs.ECS, level *assets.Level, background *ebiten.Image) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		CurrentLevel: level,
		Background:   background,
	})
	return entry
}

var roleTags = map[cfg.LayerRole]string{
	cfg.LayerSolid:    tags.ResolvSolid,
	cfg.LayerKillable: tags.ResolvKillable,
	cfg.LayerWater:    tags.ResolvWater,
}

// CreateTile adds one collidable tile body tagged by its layer role.
func CreateTile(ecs *ecs.ECS, t assets.LevelTile) *donburi.Entry {
	tag, ok := roleTags[t.Role]
	if !ok {
		return nil
	}
	tile := archetypes.Tile.Spawn(ecs)
	addToSpace(ecs, tile, resolv.NewObject(t.X, t.Y, t.Width, t.Height, tag))
	return tile
}
