package components

import (
	"github.com/automoto/coinhop/assets/animations"
	"github.com/automoto/coinhop/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Atlas            string
	CurrentAnimation *animations.Animation
	CurrentState     config.StateID
	Animations       map[config.StateID]*animations.Animation
}

// SetAnimation switches to state, restarting it only when it changes.
func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentState == state && a.CurrentAnimation != nil {
		return
	}

	anim, ok := a.Animations[state]
	if !ok {
		return
	}
	a.CurrentAnimation = anim
	a.CurrentState = state
	anim.Restart()
}

var Animation = donburi.NewComponentType[AnimationData]()
