package components

import (
	"github.com/pixeldrift/cartdash/config"
	"github.com/yohamta/donburi"
)

type PlatformData struct {
	Kind config.PlatformKind

	// Moving platform oscillation. X stays within [OriginX, OriginX+Range].
	Speed     float64
	Direction float64 // +1 or -1
	OriginX   float64
	Range     float64

	// Crumbling platforms only flicker; they never collapse.
	CrumbleTick int
}

var Platform = donburi.NewComponentType[PlatformData]()
