package systems

import (
	"testing"

	"github.com/automoto/coinhop/components"
)

func TestFollowAxis(t *testing.T) {
	tests := []struct {
		name                 string
		center, target, want float64
	}{
		{"inside deadzone", 100, 120, 100},
		{"deadzone edge", 100, 125, 100},
		{"ahead", 100, 200, 118.75},
		{"behind", 100, 0, 81.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := followAxis(tt.center, tt.target, 50, 0.25); !near(got, tt.want) {
				t.Errorf("followAxis = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClampAxis(t *testing.T) {
	tests := []struct {
		name                          string
		center, viewHalf, bound, want float64
	}{
		{"left edge", 10, 320, 1260, 320},
		{"right edge", 1200, 320, 1260, 940},
		{"free", 600, 320, 1260, 600},
		{"level narrower than view", 42, 320, 500, 250},
		{"unbounded", -50, 320, 0, -50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampAxis(tt.center, tt.viewHalf, tt.bound); got != tt.want {
				t.Errorf("clampAxis = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFollowTargetStaysInBounds(t *testing.T) {
	c := &components.CameraData{
		Zoom:       2,
		BoundsW:    1260,
		BoundsH:    360,
		FollowLerp: 0.25,
		DeadzoneW:  50,
		DeadzoneH:  50,
	}
	SnapTo(c, 90, 100, 640, 360)
	if c.Position.X != 160 || c.Position.Y != 100 {
		t.Fatalf("snap = %v, want (160, 100)", c.Position)
	}

	for i := 0; i < 200; i++ {
		FollowTarget(c, 1250, 350, 640, 360)
	}
	if c.Position.X != 1100 || c.Position.Y != 270 {
		t.Errorf("camera = %v, want clamped at (1100, 270)", c.Position)
	}
}

func TestWorldTransformCentersCamera(t *testing.T) {
	c := &components.CameraData{Zoom: 2}
	c.Position.X, c.Position.Y = 300, 100
	m := WorldTransform(c, 640, 360)

	x, y := m.Apply(300, 100)
	if x != 320 || y != 180 {
		t.Errorf("camera center maps to (%v, %v), want screen center", x, y)
	}
	x, y = m.Apply(310, 100)
	if x != 340 || y != 180 {
		t.Errorf("10px right maps to (%v, %v), want (340, 180)", x, y)
	}
}
