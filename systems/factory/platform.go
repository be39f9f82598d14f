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

// CreateMovingPlatform spawns a three-tile platform whose body corner starts
// at spec.X,spec.Y, already moving right.
func CreateMovingPlatform(ecs *ecs.ECS, spec cfg.PlatformSpec) *donburi.Entry {
	platform := archetypes.MovingPlatform.Spawn(ecs)

	w, h := cfg.Platforms.Width, cfg.Platforms.Height
	addToSpace(ecs, platform, resolv.NewObject(spec.X, spec.Y, w, h, tags.ResolvPlatform))

	components.Platform.SetValue(platform, components.PlatformData{
		MinX:  spec.MinX,
		MaxX:  spec.MaxX,
		Speed: cfg.Platforms.PatrolSpeed,
	})
	components.Physics.SetValue(platform, components.PhysicsData{
		VelX:      cfg.Platforms.InitialSpeed,
		Immovable: true,
	})

	frames := cfg.Platforms.Frames
	components.Sprite.SetValue(platform, components.SpriteData{
		Sheet:  cfg.Platforms.SheetKey,
		Frames: frames[:],
		Step:   w / float64(len(frames)),
	})
	return platform
}
