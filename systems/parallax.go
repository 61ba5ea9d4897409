package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/pixeldrift/cartdash/components"
	cfg "github.com/pixeldrift/cartdash/config"
)

// UpdateParallax scrolls the cosmetic background bands against the
// player's horizontal motion. Purely visual; nothing reads the offsets
// except the renderer.
func UpdateParallax(e *ecs.ECS) {
	entry, ok := components.Parallax.First(e.World)
	if !ok {
		return
	}
	parallax := components.Parallax.Get(entry)

	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	physics := components.Physics.Get(playerEntry)

	for i := range parallax.Offsets {
		if i >= len(cfg.Parallax.Layers) {
			break
		}
		parallax.Offsets[i] -= physics.SpeedX * cfg.Parallax.Layers[i].Speed
		width := float64(cfg.C.Width)
		if parallax.Offsets[i] <= -width {
			parallax.Offsets[i] += width
		} else if parallax.Offsets[i] >= width {
			parallax.Offsets[i] -= width
		}
	}
}
