package config

type AnimationDef struct {
	Frames []string // atlas frame names, played in order
	Speed  float32  // ticks per frame
	Loop   bool
}

// CharacterAtlas is the atlas key the player frames are read from
const CharacterAtlas = "platformer_characters"

// CharacterAnimations maps a character key to its animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"player": {
		Idle: {Frames: []string{"tile_0000.png"}, Speed: 0, Loop: true},
		Walk: {Frames: []string{"tile_0000.png", "tile_0001.png"}, Speed: 8, Loop: true},
		Jump: {Frames: []string{"tile_0001.png"}, Speed: 0, Loop: true},
	},
}
