package factory

import (
	"fmt"

	"github.com/automoto/coinhop/assets/animations"
	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
)

// GenerateAnimations builds the animation set for a character key defined in
// config. Frames are resolved against the character atlas at draw time.
func GenerateAnimations(key string) *components.AnimationData {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}

	animData := &components.AnimationData{
		Atlas:      cfg.CharacterAtlas,
		Animations: make(map[cfg.StateID]*animations.Animation, len(defs)),
	}
	for state, def := range defs {
		animData.Animations[state] = animations.NewAnimation(def.Frames, def.Speed, def.Loop)
	}
	animData.SetAnimation(cfg.Idle)
	return animData
}
