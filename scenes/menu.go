package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/coinhop/assets"
	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/systems"
	"github.com/automoto/coinhop/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu using ebitenui
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	registry     *assets.Registry
	menuUI       *ui.MenuUI
	menuData     *components.MenuData
	once         sync.Once
	shouldStart  bool
}

// NewMenuScene creates a new menu scene with variant preselected
func NewMenuScene(sc SceneChanger, registry *assets.Registry, variant cfg.Variant) *MenuScene {
	return &MenuScene{
		sceneChanger: sc,
		registry:     registry,
		menuData: &components.MenuData{
			Variant:   variant,
			SFXVolume: systems.GetSFXVolume(),
		},
	}
}

func (ms *MenuScene) Name() string { return "SceneMainMenu" }

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	// Update ECS for input and audio
	ms.ecs.Update()

	ms.menuUI.Update()

	if ms.shouldStart || ms.menuData.Start {
		ms.save()
		ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, ms.registry, ms.menuData.Variant))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenuKeys(ms.menuData, func() { ms.menuUI.CycleVariant() }))
	ms.ecs.AddSystem(systems.UpdateAudio)

	ms.menuUI = ui.NewMenuUI(
		ms.registry,
		ms.menuData,
		func() { ms.shouldStart = true },
		ms.save,
		func(id cfg.SoundID) { systems.PlaySFX(ms.ecs, id) },
	)
}

func (ms *MenuScene) save() {
	systems.SetSFXVolume(ms.menuData.SFXVolume)
	_ = systems.SaveSettings(&systems.SavedSettings{
		SFXVolume: ms.menuData.SFXVolume,
		Variant:   ms.menuData.Variant.String(),
	})
}
