package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CollisionKind says whether a rule fires on blocking contact or on overlap.
type CollisionKind int

const (
	// Collider rules fire when the physics step separates the two bodies.
	Collider CollisionKind = iota
	// Overlap rules fire when the bodies intersect; nothing is separated.
	Overlap
)

// Decision is what a collision handler asks the scene to do.
type Decision int

const (
	DecisionNone Decision = iota
	// DecisionRemove removes the other entity from the world and the space.
	DecisionRemove
	DecisionRestartScene
	DecisionLoseLife
)

func (d Decision) String() string {
	switch d {
	case DecisionRemove:
		return "remove"
	case DecisionRestartScene:
		return "restart"
	case DecisionLoseLife:
		return "lose-life"
	}
	return "none"
}

// CollisionHandler decides the outcome of self touching other. It must not
// mutate the world; effects are applied afterwards.
type CollisionHandler func(self, other *donburi.Entry) Decision

type CollisionRule struct {
	Kind     CollisionKind
	OtherTag string // resolv tag of the other body
	Handler  CollisionHandler
}

type CollisionRulesData struct {
	Rules []CollisionRule
}

var CollisionRules = donburi.NewComponentType[CollisionRulesData]()

// ContactsData holds the bodies touched this step and the step before, so a
// rule fires only on the step a contact begins.
type ContactsData struct {
	Current  map[*resolv.Object]bool
	Previous map[*resolv.Object]bool
}

// Begin rotates the sets at the start of a physics step.
func (c *ContactsData) Begin() {
	prev := c.Previous
	c.Previous = c.Current
	if prev == nil {
		prev = make(map[*resolv.Object]bool)
	}
	for k := range prev {
		delete(prev, k)
	}
	c.Current = prev
}

// Touch records a contact for this step.
func (c *ContactsData) Touch(o *resolv.Object) {
	if c.Current == nil {
		c.Current = make(map[*resolv.Object]bool)
	}
	c.Current[o] = true
}

// Began reports whether o is touched now but was not touched last step.
func (c *ContactsData) Began(o *resolv.Object) bool {
	return c.Current[o] && !c.Previous[o]
}

// Reset forgets all contacts, used after a teleport.
func (c *ContactsData) Reset() {
	for k := range c.Current {
		delete(c.Current, k)
	}
	for k := range c.Previous {
		delete(c.Previous, k)
	}
}

var Contacts = donburi.NewComponentType[ContactsData]()
