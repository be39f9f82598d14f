package factory

import (
	"github.com/automoto/coinhop/archetypes"
	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWalkingEmitter spawns the stopped dust emitter the player drives
// while walking.
func CreateWalkingEmitter(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Emitter.Spawn(ecs)
	v := cfg.VFX
	components.Emitter.SetValue(entry, components.EmitterData{
		Atlas:       v.AtlasKey,
		Frames:      v.Frames,
		FrequencyMs: v.Frequency,
		Quantity:    v.Quantity,
		LifespanMs:  v.LifespanMs,
		MaxAlive:    v.MaxAlive,
		ScaleStart:  float32(v.ScaleStart),
		ScaleEnd:    float32(v.ScaleEnd),
		AlphaStart:  float32(v.AlphaStart),
		AlphaEnd:    float32(v.AlphaEnd),
	})
	return entry
}
