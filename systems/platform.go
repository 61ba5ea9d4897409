package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixeldrift/cartdash/components"
	cfg "github.com/pixeldrift/cartdash/config"
)

// AdvanceMovingPlatform steps a moving platform one tick along its
// horizontal patrol, reversing at either end of [OriginX, OriginX+Range].
// Called from the player's resolution loop so the platform's new position
// is the one the player resolves against this tick.
func AdvanceMovingPlatform(platform *components.PlatformData, obj *resolv.Object) {
	if platform.Kind != cfg.PlatformMoving {
		return
	}

	obj.X += platform.Speed * platform.Direction
	if obj.X <= platform.OriginX {
		obj.X = platform.OriginX
		platform.Direction = cfg.DirectionRight
	} else if obj.X >= platform.OriginX+platform.Range {
		obj.X = platform.OriginX + platform.Range
		platform.Direction = cfg.DirectionLeft
	}
}

// UpdatePlatforms advances platform cosmetics. Crumbling platforms only
// flicker; they stay solid forever.
func UpdatePlatforms(e *ecs.ECS) {
	components.Platform.Each(e.World, func(entry *donburi.Entry) {
		platform := components.Platform.Get(entry)
		if platform.Kind == cfg.PlatformCrumbling {
			platform.CrumbleTick++
		}
	})
}
