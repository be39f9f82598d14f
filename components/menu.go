package components

import (
	"github.com/automoto/coinhop/config"
	"github.com/yohamta/donburi"
)

// MenuData stores the current state of the main menu
type MenuData struct {
	Variant   config.Variant
	SFXVolume float64
	Start     bool // set when the player asked to start the game
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
