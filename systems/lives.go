package systems

import (
	"log"

	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/systems/factory"
	"github.com/automoto/coinhop/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Collision handlers. They only decide; ApplyDecision performs the effect.

func CollectCoin(_, _ *donburi.Entry) components.Decision {
	return components.DecisionRemove
}

func HitHazard(_, _ *donburi.Entry) components.Decision {
	return components.DecisionRestartScene
}

func HitWater(_, _ *donburi.Entry) components.Decision {
	return components.DecisionLoseLife
}

// PlayerRules returns the collision rules the feature set enables.
func PlayerRules(f cfg.SceneFeatures) []components.CollisionRule {
	var rules []components.CollisionRule
	if f.Coins {
		rules = append(rules, components.CollisionRule{Kind: components.Overlap, OtherTag: tags.ResolvCoin, Handler: CollectCoin})
	}
	if f.HasRole(cfg.LayerKillable) {
		rules = append(rules, components.CollisionRule{Kind: components.Collider, OtherTag: tags.ResolvKillable, Handler: HitHazard})
	}
	if f.HasRole(cfg.LayerWater) && f.Lives {
		rules = append(rules, components.CollisionRule{Kind: components.Collider, OtherTag: tags.ResolvWater, Handler: HitWater})
	}
	return rules
}

// NewApplyDecisions applies and clears the decisions queued this frame.
func NewApplyDecisions(sc *SceneContext) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		for _, p := range sc.pending {
			ApplyDecision(e, sc, p.decision, p.self, p.other)
		}
		sc.pending = sc.pending[:0]
	}
}

// ApplyDecision performs the effect of a collision decision.
func ApplyDecision(e *ecs.ECS, sc *SceneContext, d components.Decision, self, other *donburi.Entry) {
	switch d {
	case components.DecisionRemove:
		removeEntry(e, other)
	case components.DecisionRestartScene:
		sc.RequestRestart("hazard")
	case components.DecisionLoseLife:
		loseLife(sc, self)
	}
}

// removeEntry takes an entity out of the world and its body out of the
// space. Removing twice is a no-op.
func removeEntry(e *ecs.ECS, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		if obj := components.Object.Get(entry); obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	e.World.Remove(entry.Entity())
}

func loseLife(sc *SceneContext, player *donburi.Entry) {
	if sc.LivesText == nil || !sc.LivesText.Valid() {
		return
	}
	lives := components.Lives.Get(sc.LivesText)
	left := lives.Lose()

	hud := components.HUDText.Get(sc.LivesText)
	hud.Text = factory.LivesLabel(left)
	hud.Pulse = gween.New(cfg.HUD.PulseScale, 1, cfg.HUD.PulseDuration, ease.OutQuad)

	if left <= 0 {
		sc.RequestRestart("out of lives")
		return
	}
	log.Printf("lost a life, %d left", left)
	Respawn(player)
}

// Respawn puts the player back at its spawn point at rest.
func Respawn(player *donburi.Entry) {
	if player == nil || !player.Valid() {
		return
	}
	data := components.Player.Get(player)
	components.Object.Get(player).SetCenter(data.SpawnX, data.SpawnY)

	physics := components.Physics.Get(player)
	physics.VelX, physics.VelY, physics.AccelX = 0, 0, 0
	physics.BlockedDown = false
	physics.Ground = nil

	if player.HasComponent(components.Contacts) {
		components.Contacts.Get(player).Reset()
	}
}
