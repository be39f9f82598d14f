package scenes

import (
	"image/color"
	"log"

	"github.com/automoto/coinhop/assets"
	cfg "github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LoadScene loads every manifest asset once, then hands off to the menu, or
// straight to the level when the menu is skipped.
type LoadScene struct {
	sceneChanger SceneChanger
	variant      cfg.Variant
	frames       int
	progress     float32
}

// NewLoadScene creates the preloader. variant is used when the menu is skipped.
func NewLoadScene(sc SceneChanger, variant cfg.Variant) *LoadScene {
	return &LoadScene{sceneChanger: sc, variant: variant}
}

func (ls *LoadScene) Name() string { return "loadScene" }

func (ls *LoadScene) Update() {
	ls.frames++
	// Let the empty bar show for one frame before the blocking load
	if ls.frames < 2 {
		return
	}

	registry := assets.MustPreload()
	ls.progress = 1
	systems.InitAudio(registry)
	log.Printf("%s: assets loaded", ls.Name())

	if cfg.Debug.SkipMenu {
		ls.sceneChanger.ChangeScene(NewPlatformerScene(ls.sceneChanger, registry, ls.variant))
		return
	}
	ls.sceneChanger.ChangeScene(NewMenuScene(ls.sceneChanger, registry, ls.variant))
}

func (ls *LoadScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	barW, barH := w/2, float32(24)
	x, y := (w-barW)/2, (h-barH)/2

	vector.StrokeRect(screen, x, y, barW, barH, 2, cfg.White, false)
	vector.FillRect(screen, x+4, y+4, (barW-8)*ls.progress, barH-8, cfg.White, false)
	ebitenutil.DebugPrintAt(screen, "Loading...", int(x), int(y)-20)
}
