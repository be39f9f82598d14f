package components

import (
	"github.com/automoto/coinhop/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// The character frames face left; FlipX mirrors them to face right
	FlipX     bool
	MoveState config.MoveState

	// Respawn point, as the sprite center
	SpawnX float64
	SpawnY float64
}

var Player = donburi.NewComponentType[PlayerData]()
