package components

import "github.com/yohamta/donburi"

// SpriteData draws spritesheet frames left to right from the body's corner.
type SpriteData struct {
	Sheet  string
	Frames []int
	Step   float64 // horizontal distance between frames
}

var Sprite = donburi.NewComponentType[SpriteData]()
