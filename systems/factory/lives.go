package factory

import (
	"fmt"

	"github.com/automoto/coinhop/archetypes"
	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LivesLabel is the text shown by the lives counter.
func LivesLabel(lives int) string {
	return fmt.Sprintf("Lives: %d", lives)
}

// CreateLivesCounter spawns the lives total with its screen-fixed label.
func CreateLivesCounter(ecs *ecs.ECS, lives int) *donburi.Entry {
	entry := archetypes.Lives.Spawn(ecs)
	components.Lives.SetValue(entry, components.LivesData{
		Lives:    lives,
		MaxLives: lives,
	})
	components.HUDText.SetValue(entry, components.HUDTextData{
		Text:  LivesLabel(lives),
		X:     cfg.HUD.X,
		Y:     cfg.HUD.Y,
		Scale: 1,
	})
	return entry
}
