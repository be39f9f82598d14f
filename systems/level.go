package systems

import (
	"github.com/automoto/coinhop/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel draws the pre-rendered tile layers through the camera.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	cam, _, ok := cameraTransform(ecs, screen)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.Background == nil {
		return
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM = cam
	screen.DrawImage(levelData.Background, opts)
}
