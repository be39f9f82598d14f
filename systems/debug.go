package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, creating it
// with the command-line defaults if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug: cfg.Debug.DrawColliders,
		})
	}
	return components.Settings.Get(entry)
}

var debugColors = []struct {
	tag string
	c   color.Color
}{
	{tags.ResolvSolid, cfg.Grey},
	{tags.ResolvKillable, cfg.Red},
	{tags.ResolvWater, cfg.Blue},
	{tags.ResolvPlatform, cfg.Purple},
	{tags.ResolvCoin, cfg.Yellow},
	{tags.ResolvPlayer, cfg.Green},
}

func debugColor(obj *resolv.Object) color.Color {
	for _, dc := range debugColors {
		if obj.HasTags(dc.tag) {
			return dc.c
		}
	}
	return cfg.Cyan
}

// NewDrawDebug outlines every body in the collision space and prints the
// player's movement state while debug drawing is on.
func NewDrawDebug(sc *SceneContext) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		settings := GetOrCreateSettings(e)
		if !settings.Debug {
			return
		}
		cam, view, ok := cameraTransform(e, screen)
		if !ok {
			return
		}
		spaceEntry, ok := components.Space.First(e.World)
		if !ok {
			return
		}
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			if !visible(view, obj.X, obj.Y, obj.W, obj.H) {
				continue
			}
			x0, y0 := cam.Apply(obj.X, obj.Y)
			x1, y1 := cam.Apply(obj.X+obj.W, obj.Y+obj.H)
			vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 1, debugColor(obj), false)
		}

		if sc.Player == nil || !sc.Player.Valid() {
			return
		}
		player := components.Player.Get(sc.Player)
		physics := components.Physics.Get(sc.Player)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"%s  vel %.0f,%.0f  grounded %v  %s",
			player.MoveState, physics.VelX, physics.VelY, physics.BlockedDown, sc.Features.Label,
		), 16, cfg.C.Height-24)
	}
}
