package systems

import (
	"github.com/automoto/coinhop/components"
	"github.com/automoto/coinhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// cameraTransform returns the world-to-screen transform and the visible
// world rectangle, padded for culling.
func cameraTransform(e *ecs.ECS, screen *ebiten.Image) (ebiten.GeoM, [4]float64, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return ebiten.GeoM{}, [4]float64{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	zoom := camera.Zoom
	if zoom == 0 {
		zoom = 1
	}
	padding := 32.0
	halfW := float64(width) / (2 * zoom)
	halfH := float64(height) / (2 * zoom)
	view := [4]float64{
		camera.Position.X - halfW - padding,
		camera.Position.Y - halfH - padding,
		camera.Position.X + halfW + padding,
		camera.Position.Y + halfH + padding,
	}
	return WorldTransform(camera, width, height), view, true
}

func visible(view [4]float64, x, y, w, h float64) bool {
	return x+w >= view[0] && x <= view[2] && y+h >= view[1] && y <= view[3]
}

// NewDrawSprites draws spritesheet entities such as coins and moving
// platforms, frames laid left to right from the body's corner.
func NewDrawSprites(sc *SceneContext) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		cam, view, ok := cameraTransform(e, screen)
		if !ok {
			return
		}
		components.Sprite.Each(e.World, func(entry *donburi.Entry) {
			o := components.Object.Get(entry)
			if !visible(view, o.X, o.Y, o.W, o.H) {
				return
			}
			sprite := components.Sprite.Get(entry)
			for i, frame := range sprite.Frames {
				img, err := sc.Registry.Frame(sprite.Sheet, frame)
				if err != nil {
					continue
				}
				drawOp.GeoM.Reset()
				drawOp.ColorScale.Reset()
				drawOp.GeoM.Translate(o.X+float64(i)*sprite.Step, o.Y)
				drawOp.GeoM.Concat(cam)
				screen.DrawImage(img, drawOp)
			}
		})
	}
}

// NewDrawPlayer draws the player's current atlas frame centered on its body.
// The frames face left, so FlipX mirrors them.
func NewDrawPlayer(sc *SceneContext) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		cam, _, ok := cameraTransform(e, screen)
		if !ok {
			return
		}
		tags.Player.Each(e.World, func(entry *donburi.Entry) {
			anim := components.Animation.Get(entry)
			if anim.CurrentAnimation == nil {
				return
			}
			img, err := sc.Registry.AtlasFrame(anim.Atlas, anim.CurrentAnimation.Frame())
			if err != nil {
				return
			}
			w, h := img.Bounds().Dx(), img.Bounds().Dy()
			cx, cy := components.Object.Get(entry).Center()

			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			drawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
			if components.Player.Get(entry).FlipX {
				drawOp.GeoM.Scale(-1, 1)
			}
			drawOp.GeoM.Translate(cx, cy)
			drawOp.GeoM.Concat(cam)
			screen.DrawImage(img, drawOp)
		})
	}
}

// NewDrawParticles draws every emitter's live particles, each centered on its
// position with its current scale and alpha.
func NewDrawParticles(sc *SceneContext) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		cam, view, ok := cameraTransform(e, screen)
		if !ok {
			return
		}
		components.Emitter.Each(e.World, func(entry *donburi.Entry) {
			em := components.Emitter.Get(entry)
			for i := range em.Particles {
				p := &em.Particles[i]
				if !visible(view, p.X, p.Y, 0, 0) {
					continue
				}
				img, err := sc.Registry.AtlasFrame(em.Atlas, p.Frame)
				if err != nil {
					continue
				}
				w, h := img.Bounds().Dx(), img.Bounds().Dy()
				drawOp.GeoM.Reset()
				drawOp.ColorScale.Reset()
				drawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
				drawOp.GeoM.Scale(float64(p.Scale), float64(p.Scale))
				drawOp.GeoM.Translate(p.X, p.Y)
				drawOp.GeoM.Concat(cam)
				drawOp.ColorScale.ScaleAlpha(p.Alpha)
				screen.DrawImage(img, drawOp)
			}
		})
	}
}
