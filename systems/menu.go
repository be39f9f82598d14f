package systems

import (
	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMenuKeys lets the keyboard and gamepad drive the main menu next to
// the mouse: select starts the game, toggle cycles the level variant.
func NewUpdateMenuKeys(menu *components.MenuData, cycleVariant func()) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionMenuToggle).JustPressed {
			PlaySFX(e, cfg.SoundButtonOver)
			cycleVariant()
		}
		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundButtonDown)
			menu.Start = true
		}
	}
}
