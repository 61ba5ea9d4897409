package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixeldrift/cartdash/components"
	cfg "github.com/pixeldrift/cartdash/config"
)

// MustFindSession returns the singleton session state. The scene creates
// it before any system runs.
func MustFindSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		panic("session component not found")
	}
	return components.Session.Get(entry)
}

// UpdateSession advances the run clock, detects terminal conditions and
// handles the retry action. Runs after the gameplay systems so terminal
// detection sees this tick's final positions; it is NOT wrapped in
// gameplay checks because retry and the shake countdown work while the
// simulation is halted.
func UpdateSession(e *ecs.ECS) {
	session := MustFindSession(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionRetry).JustPressed {
		ResetRun(e)
		return
	}

	terminal := session.GameOver || session.Victory

	if !session.Paused && !terminal {
		session.Elapsed += 1.0 / 60.0
	}

	if !terminal {
		if playerEntry, ok := components.Player.First(e.World); ok {
			player := components.Player.Get(playerEntry)
			obj := components.Object.Get(playerEntry)

			if obj.X >= cfg.Goal.MinX && obj.Y >= cfg.Goal.MinY {
				session.Victory = true
				PlaySFX(e, cfg.SoundVictory)
				activateOverlay(e)
			} else if player.Health <= 0 {
				session.GameOver = true
				PlaySFX(e, cfg.SoundDefeat)
				activateOverlay(e)
			}
		}
	}

	// Shake counts down even while the simulation is halted.
	if session.ShakeFrames > 0 {
		session.ShakeFrames--
		session.ShakeElapsed++
		if session.ShakeFrames == 0 {
			session.ShakeMagnitude = 0
			session.ShakeElapsed = 0
		}
	}
}

// TriggerShake starts a screen shake. A new shake replaces any shake in
// progress, even a stronger one.
func TriggerShake(session *components.SessionData, magnitude float64, frames int) {
	session.ShakeMagnitude = magnitude
	session.ShakeFrames = frames
	session.ShakeElapsed = 0
}

// ResetRun restores the initial run state in place: score, clock, player,
// collectibles, enemies and moving platforms all return to their spawn
// configuration. Audio toggles survive the reset.
func ResetRun(e *ecs.ECS) {
	session := MustFindSession(e)
	session.Score = 0
	session.Tokens = 0
	session.Elapsed = 0
	session.Paused = false
	session.GameOver = false
	session.Victory = false
	session.ShakeMagnitude = 0
	session.ShakeFrames = 0
	session.ShakeElapsed = 0

	if playerEntry, ok := components.Player.First(e.World); ok {
		player := components.Player.Get(playerEntry)
		physics := components.Physics.Get(playerEntry)
		state := components.State.Get(playerEntry)
		obj := components.Object.Get(playerEntry)

		obj.X = player.SpawnX
		obj.Y = player.SpawnY
		physics.SpeedX = 0
		physics.SpeedY = 0
		player.Health = cfg.Player.Health
		player.Facing = cfg.DirectionRight
		player.Grounded = false
		player.CoyoteFrames = 0
		player.JumpBufferFrames = 0
		player.DoubleJumpUsed = false
		player.DashCooldown = 0
		player.InvulnFrames = 0
		player.AnimFrame = 0
		player.AnimTimer = 0
		state.CurrentState = cfg.Idle
		state.PreviousState = cfg.StateNone
		state.StateTimer = 0
	}

	components.Token.Each(e.World, func(entry *donburi.Entry) {
		token := components.Token.Get(entry)
		token.Collected = false
		token.AnimFrame = 0
		token.AnimTimer = 0
	})

	components.Powerup.Each(e.World, func(entry *donburi.Entry) {
		powerup := components.Powerup.Get(entry)
		powerup.Collected = false
		powerup.AnimFrame = 0
		powerup.AnimTimer = 0
	})

	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		obj := components.Object.Get(entry)
		obj.X = enemy.SpawnX
		obj.Y = enemy.SpawnY
		enemy.Active = true
		enemy.Health = cfg.Enemy.Types[enemy.Kind].Health
		enemy.Direction = cfg.DirectionRight
		enemy.GlitchFrames = 0
		enemy.FloatPhase = 0
		enemy.BaseY = enemy.SpawnY
		enemy.AnimFrame = 0
		enemy.AnimTimer = 0
	})

	components.Platform.Each(e.World, func(entry *donburi.Entry) {
		platform := components.Platform.Get(entry)
		if platform.Kind != cfg.PlatformMoving {
			return
		}
		obj := components.Object.Get(entry)
		obj.X = platform.OriginX
		platform.Direction = cfg.DirectionRight
	})

	if entry, ok := components.Particles.First(e.World); ok {
		particles := components.Particles.Get(entry)
		particles.Pool = particles.Pool[:0]
	}

	if entry, ok := components.Overlay.First(e.World); ok {
		overlay := components.Overlay.Get(entry)
		overlay.Active = false
		overlay.Alpha = 0
		overlay.Fade = nil
	}
}
