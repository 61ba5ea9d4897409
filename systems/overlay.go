package systems

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixeldrift/cartdash/components"
	cfg "github.com/pixeldrift/cartdash/config"
)

func activateOverlay(e *ecs.ECS) {
	entry, ok := components.Overlay.First(e.World)
	if !ok {
		return
	}
	overlay := components.Overlay.Get(entry)
	overlay.Active = true
	overlay.Alpha = 0
	overlay.Fade = gween.New(0, cfg.Overlay.FadeTarget, cfg.Overlay.FadeSeconds, ease.OutQuad)
}

// UpdateOverlay advances the terminal-screen fade. Runs unwrapped so the
// fade keeps playing after the simulation halts.
func UpdateOverlay(e *ecs.ECS) {
	entry, ok := components.Overlay.First(e.World)
	if !ok {
		return
	}
	overlay := components.Overlay.Get(entry)
	if !overlay.Active || overlay.Fade == nil {
		return
	}

	alpha, done := overlay.Fade.Update(1.0 / 60.0)
	overlay.Alpha = alpha
	if done {
		overlay.Fade = nil
	}
}
