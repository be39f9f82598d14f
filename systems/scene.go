package systems

import (
	"github.com/automoto/coinhop/assets"
	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/yohamta/donburi"
)

// SceneContext is the state of one gameplay scene instance. Systems close
// over it; a restart discards it together with the world.
type SceneContext struct {
	Variant  cfg.Variant
	Features cfg.SceneFeatures
	Registry *assets.Registry

	Player    *donburi.Entry
	Emitter   *donburi.Entry
	LivesText *donburi.Entry

	pending       []pendingDecision
	restart       bool
	restartReason string
}

type pendingDecision struct {
	decision    components.Decision
	self, other *donburi.Entry
}

func NewSceneContext(registry *assets.Registry, variant cfg.Variant) *SceneContext {
	return &SceneContext{
		Variant:  variant,
		Features: cfg.Features(variant),
		Registry: registry,
	}
}

// RequestRestart asks the scene to rebuild itself after this frame. The first
// reason of a frame is kept.
func (c *SceneContext) RequestRestart(reason string) {
	if c.restart {
		return
	}
	c.restart = true
	c.restartReason = reason
}

func (c *SceneContext) RestartRequested() (bool, string) {
	return c.restart, c.restartReason
}

// queue records a decision for this frame, dropping repeats so that touching
// several tiles of one layer at once counts as a single event.
func (c *SceneContext) queue(d components.Decision, self, other *donburi.Entry) {
	for _, p := range c.pending {
		if p.decision != d {
			continue
		}
		switch d {
		case components.DecisionRemove:
			if p.other == other {
				return
			}
		default:
			if p.self == self {
				return
			}
		}
	}
	c.pending = append(c.pending, pendingDecision{decision: d, self: self, other: other})
}
