package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
	Tile     = donburi.NewTag().SetName("Tile")
	Coin     = donburi.NewTag().SetName("Coin")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvKillable = "killable"
	ResolvWater    = "water"
	ResolvPlatform = "platform"
	ResolvCoin     = "coin"
	ResolvPlayer   = "Player"
)

// Blocking lists every tag a moving body is separated from.
var Blocking = []string{ResolvSolid, ResolvKillable, ResolvWater, ResolvPlatform}
