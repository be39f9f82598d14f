package systems

import (
	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var hudDrawOp = &ebiten.DrawImageOptions{}

// UpdateHUD advances running text pulses.
func UpdateHUD(ecs *ecs.ECS) {
	dt := float32(cfg.Physics.StepSeconds)
	components.HUDText.Each(ecs.World, func(e *donburi.Entry) {
		hud := components.HUDText.Get(e)
		if hud.Pulse == nil {
			return
		}
		scale, done := hud.Pulse.Update(dt)
		hud.Scale = scale
		if done {
			hud.Pulse = nil
			hud.Scale = 1
		}
	})
}

// DrawHUD renders screen-fixed text such as the lives counter. It ignores
// the camera.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.HUD.Get()
	ascent := float64(face.Metrics().Ascent.Ceil())

	components.HUDText.Each(ecs.World, func(e *donburi.Entry) {
		hud := components.HUDText.Get(e)
		scale := float64(hud.Scale)
		if scale == 0 {
			scale = 1
		}
		hudDrawOp.GeoM.Reset()
		hudDrawOp.ColorScale.Reset()
		// text.Draw anchors at the baseline; shift so X,Y is the top-left
		hudDrawOp.GeoM.Translate(0, ascent)
		hudDrawOp.GeoM.Scale(scale, scale)
		hudDrawOp.GeoM.Translate(hud.X, hud.Y)
		hudDrawOp.ColorScale.ScaleWithColor(cfg.HUD.TextColor)
		text.DrawWithOptions(screen, hud.Text, face, hudDrawOp)
	})
}
