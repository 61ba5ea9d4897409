package components

import (
	"github.com/pixeldrift/cartdash/config"
	"github.com/yohamta/donburi"
)

type PowerupData struct {
	Kind      config.PowerupKind
	Collected bool
	// Duration is populated on collection but never consumed; collection
	// grants a flat score bonus only.
	Duration  int
	AnimFrame int
	AnimTimer int
}

var Powerup = donburi.NewComponentType[PowerupData]()
