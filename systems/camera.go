package systems

import (
	"github.com/automoto/coinhop/components"
	"github.com/automoto/coinhop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateCamera follows the scene's player, keeping it inside the deadzone
// and the view inside the level.
func NewUpdateCamera(sc *SceneContext) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		cameraEntry, ok := components.Camera.First(e.World)
		if !ok {
			return
		}
		if sc.Player == nil || !sc.Player.Valid() {
			return
		}
		camera := components.Camera.Get(cameraEntry)
		tx, ty := components.Object.Get(sc.Player).Center()
		FollowTarget(camera, tx, ty, float64(config.C.Width), float64(config.C.Height))
	}
}

// FollowTarget moves the camera toward a target once it leaves the deadzone,
// then clamps the view to the camera bounds.
func FollowTarget(c *components.CameraData, tx, ty, screenW, screenH float64) {
	zoom := c.Zoom
	if zoom == 0 {
		zoom = 1
	}
	c.Position.X = followAxis(c.Position.X, tx, c.DeadzoneW, c.FollowLerp)
	c.Position.Y = followAxis(c.Position.Y, ty, c.DeadzoneH, c.FollowLerp)
	c.Position.X = clampAxis(c.Position.X, screenW/(2*zoom), c.BoundsW)
	c.Position.Y = clampAxis(c.Position.Y, screenH/(2*zoom), c.BoundsH)
}

// SnapTo centers the camera on a point without easing.
func SnapTo(c *components.CameraData, x, y, screenW, screenH float64) {
	zoom := c.Zoom
	if zoom == 0 {
		zoom = 1
	}
	c.Position.X = clampAxis(x, screenW/(2*zoom), c.BoundsW)
	c.Position.Y = clampAxis(y, screenH/(2*zoom), c.BoundsH)
}

func followAxis(center, target, deadzone, lerp float64) float64 {
	half := deadzone / 2
	var goal float64
	switch {
	case target > center+half:
		goal = target - half
	case target < center-half:
		goal = target + half
	default:
		return center
	}
	return center + (goal-center)*lerp
}

func clampAxis(center, viewHalf, bound float64) float64 {
	if bound <= 0 {
		return center
	}
	if bound <= 2*viewHalf {
		return bound / 2
	}
	if center < viewHalf {
		return viewHalf
	}
	if center > bound-viewHalf {
		return bound - viewHalf
	}
	return center
}

// WorldTransform maps world coordinates to the screen for the given camera:
// translate to camera-relative position, scale by zoom, center on screen.
func WorldTransform(c *components.CameraData, screenW, screenH int) ebiten.GeoM {
	zoom := c.Zoom
	if zoom == 0 {
		zoom = 1.0
	}
	var m ebiten.GeoM
	m.Translate(-c.Position.X, -c.Position.Y)
	m.Scale(zoom, zoom)
	m.Translate(float64(screenW)/2, float64(screenH)/2)
	return m
}

// SnapToEntry snaps the camera stored on entry to a point for the current
// window size.
func SnapToEntry(entry *donburi.Entry, x, y float64) {
	SnapTo(components.Camera.Get(entry), x, y, float64(config.C.Width), float64(config.C.Height))
}
