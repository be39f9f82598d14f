package components

import (
	"github.com/automoto/coinhop/assets"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *assets.Level
	Background   *ebiten.Image
}

var Level = donburi.NewComponentType[LevelData]()
