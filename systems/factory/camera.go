package factory

import (
	"github.com/automoto/coinhop/archetypes"
	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera makes the view camera, bounded to boundsW x boundsH and
// centered on x,y.
func CreateCamera(ecs *ecs.ECS, boundsW, boundsH, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position:   math.Vec2{X: x, Y: y},
		Zoom:       cfg.Camera.Zoom,
		BoundsW:    boundsW,
		BoundsH:    boundsH,
		FollowLerp: cfg.Camera.FollowLerp,
		DeadzoneW:  cfg.Camera.DeadzoneW,
		DeadzoneH:  cfg.Camera.DeadzoneH,
	})
	return camera
}
