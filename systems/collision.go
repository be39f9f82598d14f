package systems

import (
	"github.com/automoto/coinhop/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateCollisions runs the collision rules of every entity that has
// them. A rule fires only on the step its contact begins; decisions are
// queued on the scene and applied by NewApplyDecisions.
func NewUpdateCollisions(sc *SceneContext) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		components.CollisionRules.Each(e.World, func(self *donburi.Entry) {
			if !self.HasComponent(components.Contacts) || !self.HasComponent(components.Object) {
				return
			}
			rules := components.CollisionRules.Get(self)
			contacts := components.Contacts.Get(self)
			obj := components.Object.Get(self).Object

			for _, rule := range rules.Rules {
				if rule.Kind == components.Overlap {
					touchOverlaps(obj, rule.OtherTag, contacts)
				}
			}

			for o := range contacts.Current {
				if !contacts.Began(o) {
					continue
				}
				other, ok := o.Data.(*donburi.Entry)
				if !ok || !other.Valid() {
					continue
				}
				for _, rule := range rules.Rules {
					if !o.HasTags(rule.OtherTag) {
						continue
					}
					if d := rule.Handler(self, other); d != components.DecisionNone {
						sc.queue(d, self, other)
					}
				}
			}
		})
	}
}

// touchOverlaps records every body tagged tag that intersects obj.
func touchOverlaps(obj *resolv.Object, tag string, contacts *components.ContactsData) {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return
	}
	for _, o := range check.ObjectsByTags(tag) {
		if overlaps(obj.X, obj.W, o.X, o.W) && overlaps(obj.Y, obj.H, o.Y, o.H) {
			contacts.Touch(o)
		}
	}
}
