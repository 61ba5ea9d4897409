package systems

import (
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/pixeldrift/cartdash/config"
)

// UpdatePause handles the pause toggle. Runs AFTER UpdateInput but BEFORE
// the gameplay systems. Pausing is ignored once the run has ended.
func UpdatePause(e *ecs.ECS) {
	session := MustFindSession(e)
	input := getOrCreateInput(e)

	if !GetAction(input, cfg.ActionPause).JustPressed {
		return
	}
	if session.GameOver || session.Victory {
		return
	}

	session.Paused = !session.Paused
	if session.Paused {
		PauseMusic(e)
	} else {
		ResumeMusic(e)
	}
}

// WithGameplayChecks wraps a system to skip execution while the
// simulation is halted: paused, victorious or game over.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		session := MustFindSession(e)
		if session.Paused || session.GameOver || session.Victory {
			return
		}
		system(e)
	}
}
