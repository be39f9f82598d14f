package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/fonts"
	"github.com/automoto/coinhop/scenes"
	"github.com/automoto/coinhop/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type namedScene interface {
	Name() string
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	tuning *config.TuningWatcher
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	next := scene.(Scene)
	log.Printf("scene: %s -> %s", sceneName(g.scene), sceneName(next))
	g.scene = next
}

func sceneName(s Scene) string {
	if n, ok := s.(namedScene); ok {
		return n.Name()
	}
	return "none"
}

func NewGame(variant config.Variant, tuning *config.TuningWatcher) *Game {
	fonts.LoadDefaults(config.HUD.FontSize)

	g := &Game{
		bounds: image.Rectangle{},
		tuning: tuning,
	}
	g.scene = scenes.NewLoadScene(g, variant)
	return g
}

func (g *Game) Update() error {
	if g.tuning != nil {
		if reloaded, err := g.tuning.Poll(); err != nil {
			log.Printf("Warning: tuning not applied: %v", err)
		} else if reloaded {
			log.Printf("tuning reloaded")
		}
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	variantFlag := flag.String("variant", "", "level variant: full or basic (default: last played)")
	skipMenu := flag.Bool("skipmenu", false, "start the level without the main menu")
	tuningPath := flag.String("tuning", "", "YAML file overriding player, physics and platform tuning")
	watch := flag.Bool("watch", false, "re-apply the tuning file when it changes")
	debug := flag.Bool("debug", false, "start with collider outlines visible")
	flag.Parse()

	config.Debug.SkipMenu = *skipMenu
	config.Debug.DrawColliders = *debug

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	variant := config.VariantFull
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		if v, ok := systems.ApplySavedSettings(saved); ok {
			variant = v
		}
	}
	if *variantFlag != "" {
		v, err := config.ParseVariant(*variantFlag)
		if err != nil {
			log.Fatal(err)
		}
		variant = v
	}

	var tuning *config.TuningWatcher
	if *tuningPath != "" {
		if err := config.LoadTuningFile(*tuningPath); err != nil {
			log.Fatalf("load tuning: %v", err)
		}
		if *watch {
			w, err := config.WatchTuning(*tuningPath)
			if err != nil {
				log.Printf("Warning: Could not watch %s: %v", *tuningPath, err)
			} else {
				tuning = w
				defer tuning.Close()
			}
		}
	}

	if err := ebiten.RunGame(NewGame(variant, tuning)); err != nil {
		log.Fatal(err)
	}
}
