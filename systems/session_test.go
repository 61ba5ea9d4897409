package systems

import (
	"math"
	"testing"

	"github.com/pixeldrift/cartdash/assets"
	"github.com/pixeldrift/cartdash/components"
	cfg "github.com/pixeldrift/cartdash/config"
	"github.com/pixeldrift/cartdash/systems/factory"
)

func TestVictoryRequiresBothGoalThresholds(t *testing.T) {
	cases := []struct {
		name string
		x, y float64
		want bool
	}{
		{"at threshold corner", cfg.Goal.MinX, cfg.Goal.MinY, true},
		{"past threshold", cfg.Goal.MinX + 20, cfg.Goal.MinY + 30, true},
		{"right but too high", cfg.Goal.MinX + 20, cfg.Goal.MinY - 1, false},
		{"low but too far left", cfg.Goal.MinX - 1, cfg.Goal.MinY + 30, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tw := newTestWorld()
			obj := tw.playerObject()
			obj.X = tc.x
			obj.Y = tc.y

			tw.setInput()
			UpdateSession(tw.ecs)

			session := MustFindSession(tw.ecs)
			if session.Victory != tc.want {
				t.Errorf("victory at (%v,%v) = %v, want %v", tc.x, tc.y, session.Victory, tc.want)
			}
		})
	}
}

func TestVictoryActivatesOverlay(t *testing.T) {
	tw := newTestWorld()
	obj := tw.playerObject()
	obj.X = cfg.Goal.MinX
	obj.Y = cfg.Goal.MinY

	tw.setInput()
	UpdateSession(tw.ecs)

	entry, _ := components.Overlay.First(tw.ecs.World)
	overlay := components.Overlay.Get(entry)
	if !overlay.Active || overlay.Fade == nil {
		t.Error("terminal overlay did not activate on victory")
	}
}

func TestDefeatWhenHealthDepleted(t *testing.T) {
	tw := newTestWorld()
	tw.playerData().Health = 0

	tw.setInput()
	UpdateSession(tw.ecs)

	session := MustFindSession(tw.ecs)
	if !session.GameOver {
		t.Error("session did not enter game over at zero health")
	}
	if session.Victory {
		t.Error("game over and victory set together")
	}
}

func TestTerminalStateHaltsClock(t *testing.T) {
	tw := newTestWorld()
	session := MustFindSession(tw.ecs)

	tw.setInput()
	UpdateSession(tw.ecs)
	if session.Elapsed == 0 {
		t.Fatal("clock did not advance on a live run")
	}

	session.Victory = true
	before := session.Elapsed
	for i := 0; i < 10; i++ {
		tw.setInput()
		UpdateSession(tw.ecs)
	}
	if session.Elapsed != before {
		t.Error("clock kept running after victory")
	}
	if !session.Victory {
		t.Error("terminal state did not latch")
	}
}

func TestPauseHaltsClock(t *testing.T) {
	tw := newTestWorld()
	session := MustFindSession(tw.ecs)
	session.Paused = true

	tw.setInput()
	UpdateSession(tw.ecs)
	if session.Elapsed != 0 {
		t.Error("clock advanced while paused")
	}

	session.Paused = false
	tw.setInput()
	UpdateSession(tw.ecs)
	if math.Abs(session.Elapsed-1.0/60.0) > 1e-9 {
		t.Errorf("elapsed = %v, want one tick", session.Elapsed)
	}
}

func TestShakeReplacesShakeInProgress(t *testing.T) {
	tw := newTestWorld()
	session := MustFindSession(tw.ecs)

	TriggerShake(session, cfg.ScreenShake.DamageMagnitude, cfg.ScreenShake.DamageFrames)
	tw.setInput()
	UpdateSession(tw.ecs)

	TriggerShake(session, cfg.ScreenShake.DefeatMagnitude, cfg.ScreenShake.DefeatFrames)
	if session.ShakeMagnitude != cfg.ScreenShake.DefeatMagnitude {
		t.Error("weaker shake did not replace stronger one")
	}
	if session.ShakeElapsed != 0 {
		t.Error("replacement shake did not restart the elapsed counter")
	}

	TriggerShake(session, cfg.ScreenShake.DamageMagnitude, cfg.ScreenShake.DamageFrames)
	if session.ShakeMagnitude != cfg.ScreenShake.DamageMagnitude {
		t.Error("stronger shake did not replace weaker one")
	}
}

func TestShakeCountsDownWhilePaused(t *testing.T) {
	tw := newTestWorld()
	session := MustFindSession(tw.ecs)
	session.Paused = true

	TriggerShake(session, 6, 5)
	for i := 0; i < 5; i++ {
		tw.setInput()
		UpdateSession(tw.ecs)
	}
	if session.ShakeFrames != 0 || session.ShakeMagnitude != 0 || session.ShakeElapsed != 0 {
		t.Errorf("shake did not expire cleanly: frames=%d mag=%v elapsed=%d",
			session.ShakeFrames, session.ShakeMagnitude, session.ShakeElapsed)
	}
}

func TestResetRunRestoresWorld(t *testing.T) {
	tw := newTestWorld()
	session := MustFindSession(tw.ecs)

	tokenEntry := factory.CreateToken(tw.ecs, tw.space, assets.TokenDef{X: 300, Y: 300, Kind: cfg.TokenCurrency})
	powerupEntry := factory.CreatePowerup(tw.ecs, tw.space, assets.PowerupDef{X: 340, Y: 300, Kind: cfg.PowerupThemeBooster})
	enemyEntry := factory.CreateEnemy(tw.ecs, tw.space, assets.EnemyDef{X: 500, Y: 400, Kind: cfg.EnemyShuffler})
	moverEntry := factory.CreatePlatform(tw.ecs, tw.space, assets.PlatformDef{
		X: 700, Y: 300, W: 96, H: 16, Kind: cfg.PlatformMoving, Speed: 1, Range: 80,
	})

	// Scramble everything a run can touch.
	session.Score = 500
	session.Tokens = 7
	session.Elapsed = 33.5
	session.Victory = true
	session.SoundEnabled = false
	TriggerShake(session, 8, 24)

	player := tw.playerData()
	player.Health = 1
	player.DoubleJumpUsed = true
	tw.playerObject().X = 900
	tw.playerObject().Y = 200

	components.Token.Get(tokenEntry).Collected = true
	components.Powerup.Get(powerupEntry).Collected = true

	enemy := components.Enemy.Get(enemyEntry)
	enemy.Active = false
	components.Object.Get(enemyEntry).X = 50

	mover := components.Platform.Get(moverEntry)
	mover.Direction = cfg.DirectionLeft
	components.Object.Get(moverEntry).X = 760

	SpawnBurst(tw.ecs, cfg.ParticleSpark, 100, 100)

	ResetRun(tw.ecs)

	if session.Score != 0 || session.Tokens != 0 || session.Elapsed != 0 {
		t.Errorf("session counters not reset: score=%d tokens=%d elapsed=%v",
			session.Score, session.Tokens, session.Elapsed)
	}
	if session.Victory || session.GameOver || session.Paused {
		t.Error("terminal flags survived reset")
	}
	if session.ShakeFrames != 0 || session.ShakeMagnitude != 0 {
		t.Error("shake survived reset")
	}
	if session.SoundEnabled {
		t.Error("audio toggle did not survive reset")
	}

	if got := tw.playerObject(); got.X != player.SpawnX || got.Y != player.SpawnY {
		t.Errorf("player at (%v,%v), want spawn (%v,%v)", got.X, got.Y, player.SpawnX, player.SpawnY)
	}
	if player.Health != cfg.Player.Health || player.DoubleJumpUsed {
		t.Error("player run state not restored")
	}
	if tw.playerState().CurrentState != cfg.Idle {
		t.Errorf("player state %v after reset, want idle", tw.playerState().CurrentState)
	}

	if components.Token.Get(tokenEntry).Collected {
		t.Error("token stayed collected")
	}
	if components.Powerup.Get(powerupEntry).Collected {
		t.Error("powerup stayed collected")
	}

	if !enemy.Active {
		t.Error("defeated enemy not restored")
	}
	if got := components.Object.Get(enemyEntry).X; got != enemy.SpawnX {
		t.Errorf("enemy at x=%v, want spawn %v", got, enemy.SpawnX)
	}

	if got := components.Object.Get(moverEntry).X; got != mover.OriginX {
		t.Errorf("moving platform at x=%v, want origin %v", got, mover.OriginX)
	}
	if mover.Direction != cfg.DirectionRight {
		t.Error("moving platform direction not restored")
	}

	entry, _ := components.Particles.First(tw.ecs.World)
	if len(components.Particles.Get(entry).Pool) != 0 {
		t.Error("particles survived reset")
	}
}

func TestRetryActionResetsRun(t *testing.T) {
	tw := newTestWorld()
	session := MustFindSession(tw.ecs)
	session.Score = 120
	session.GameOver = true

	tw.setInput(cfg.ActionRetry)
	UpdateSession(tw.ecs)

	if session.Score != 0 || session.GameOver {
		t.Error("retry press did not reset the run")
	}
}
