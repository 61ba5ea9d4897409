package systems

import (
	"math"
	"testing"

	"github.com/yohamta/donburi"

	"github.com/pixeldrift/cartdash/assets"
	"github.com/pixeldrift/cartdash/components"
	cfg "github.com/pixeldrift/cartdash/config"
	"github.com/pixeldrift/cartdash/systems/factory"
)

// spawnEnemyAtPlayer places an enemy directly on the player so contact
// triggers this tick.
func spawnEnemyAtPlayer(tw *testWorld, kind cfg.EnemyKind) *donburi.Entry {
	obj := tw.playerObject()
	return factory.CreateEnemy(tw.ecs, tw.space, assets.EnemyDef{
		X: obj.X, Y: obj.Y, Kind: kind,
	})
}

func TestDashContactDefeatsEnemy(t *testing.T) {
	tw := newTestWorld()
	tw.settle()

	entry := spawnEnemyAtPlayer(tw, cfg.EnemyShuffler)
	enemy := components.Enemy.Get(entry)

	tw.playerState().CurrentState = cfg.Dashing
	tw.playerData().InvulnFrames = 0
	session := MustFindSession(tw.ecs)
	healthBefore := tw.playerData().Health

	UpdateEnemies(tw.ecs)

	if enemy.Active {
		t.Error("enemy should be deactivated by dash contact")
	}
	if session.Score != cfg.Enemy.DefeatBonus {
		t.Errorf("score = %d, want defeat bonus %d", session.Score, cfg.Enemy.DefeatBonus)
	}
	if tw.playerData().Health != healthBefore {
		t.Errorf("health changed %d -> %d on a dash kill", healthBefore, tw.playerData().Health)
	}
	if session.ShakeMagnitude != cfg.ScreenShake.DefeatMagnitude {
		t.Errorf("shake = %v, want %v", session.ShakeMagnitude, cfg.ScreenShake.DefeatMagnitude)
	}
}

func TestContactWithoutDashDamagesPlayer(t *testing.T) {
	tw := newTestWorld()
	tw.settle()

	entry := spawnEnemyAtPlayer(tw, cfg.EnemyZombie)
	enemy := components.Enemy.Get(entry)

	player := tw.playerData()
	player.Facing = cfg.DirectionRight
	player.InvulnFrames = 0
	tw.playerState().CurrentState = cfg.Running
	session := MustFindSession(tw.ecs)

	UpdateEnemies(tw.ecs)

	if player.Health != cfg.Player.Health-1 {
		t.Errorf("health = %d, want %d", player.Health, cfg.Player.Health-1)
	}
	if !enemy.Active {
		t.Error("enemy should survive a non-dash contact")
	}
	if player.InvulnFrames != cfg.Player.InvulnFrames {
		t.Errorf("invuln = %d, want %d", player.InvulnFrames, cfg.Player.InvulnFrames)
	}
	// Knockback pushes away from the facing direction
	if got := tw.playerPhysics().SpeedX; got != -cfg.Player.KnockbackSpeed {
		t.Errorf("knockback SpeedX = %v, want %v", got, -cfg.Player.KnockbackSpeed)
	}
	if got := tw.playerState().CurrentState; got != cfg.Damage {
		t.Errorf("state = %v, want Damage", got)
	}
	if session.ShakeMagnitude != cfg.ScreenShake.DamageMagnitude {
		t.Errorf("shake = %v, want %v", session.ShakeMagnitude, cfg.ScreenShake.DamageMagnitude)
	}
}

func TestInvulnerablePlayerIgnoresContact(t *testing.T) {
	tw := newTestWorld()
	tw.settle()

	entry := spawnEnemyAtPlayer(tw, cfg.EnemyShuffler)
	enemy := components.Enemy.Get(entry)

	player := tw.playerData()
	player.InvulnFrames = 30
	healthBefore := player.Health

	UpdateEnemies(tw.ecs)

	if player.Health != healthBefore {
		t.Errorf("health changed %d -> %d while invulnerable", healthBefore, player.Health)
	}
	if !enemy.Active {
		t.Error("enemy deactivated by an invulnerable, non-dashing player")
	}
}

func TestInactiveEnemyIsSkipped(t *testing.T) {
	tw := newTestWorld()
	tw.settle()

	entry := spawnEnemyAtPlayer(tw, cfg.EnemyShuffler)
	enemy := components.Enemy.Get(entry)
	enemy.Active = false

	player := tw.playerData()
	player.InvulnFrames = 0
	healthBefore := player.Health

	UpdateEnemies(tw.ecs)

	if player.Health != healthBefore {
		t.Errorf("inactive enemy damaged the player")
	}
}

func TestKrakenOscillatesAroundAnchor(t *testing.T) {
	tw := newTestWorld()

	entry := factory.CreateEnemy(tw.ecs, tw.space, assets.EnemyDef{
		X: 900, Y: 200, Kind: cfg.EnemyKraken,
	})
	enemy := components.Enemy.Get(entry)
	state := components.State.Get(entry)
	obj := components.Object.Get(entry).Object
	amp := cfg.Enemy.Types[cfg.EnemyKraken].FloatAmplitude

	minY, maxY := math.Inf(1), math.Inf(-1)
	for i := 0; i < 600; i++ {
		UpdateEnemies(tw.ecs)
		if obj.X != 900 {
			t.Fatalf("kraken drifted horizontally to %v", obj.X)
		}
		minY = math.Min(minY, obj.Y)
		maxY = math.Max(maxY, obj.Y)
	}

	if state.CurrentState != cfg.Idle {
		t.Errorf("kraken state = %v, want Idle", state.CurrentState)
	}
	if minY < enemy.BaseY-amp-1e-9 || maxY > enemy.BaseY+amp+1e-9 {
		t.Errorf("oscillation [%v, %v] exceeds BaseY±%v", minY, maxY, amp)
	}
	// Phase should have swept through most of the band
	if maxY-minY < amp {
		t.Errorf("oscillation span %v too small for amplitude %v", maxY-minY, amp)
	}
}

func TestShufflerReversesAtWorldEdge(t *testing.T) {
	tw := newTestWorld()

	entry := factory.CreateEnemy(tw.ecs, tw.space, assets.EnemyDef{
		X: float64(cfg.C.Width) - 40, Y: 518, Kind: cfg.EnemyShuffler,
	})
	enemy := components.Enemy.Get(entry)
	enemy.Direction = cfg.DirectionRight
	obj := components.Object.Get(entry).Object

	// Generous window: a random glitch can stall the patrol for 45 frames
	for i := 0; i < 150; i++ {
		UpdateEnemies(tw.ecs)
	}

	if enemy.Direction != cfg.DirectionLeft {
		t.Errorf("direction = %v, want reversed to left", enemy.Direction)
	}
	if obj.X+obj.W > float64(cfg.C.Width) {
		t.Errorf("enemy escaped the playfield: X = %v", obj.X)
	}
}

func TestShufflerGlitchFreezesInPlace(t *testing.T) {
	tw := newTestWorld()

	entry := factory.CreateEnemy(tw.ecs, tw.space, assets.EnemyDef{
		X: 500, Y: 518, Kind: cfg.EnemyShuffler,
	})
	enemy := components.Enemy.Get(entry)
	state := components.State.Get(entry)
	obj := components.Object.Get(entry).Object

	enemy.GlitchFrames = 5
	x := obj.X

	UpdateEnemies(tw.ecs)

	if obj.X != x {
		t.Errorf("glitched shuffler moved from %v to %v", x, obj.X)
	}
	if state.CurrentState != cfg.Damage {
		t.Errorf("state = %v, want Damage pose", state.CurrentState)
	}
	if enemy.GlitchFrames != 4 {
		t.Errorf("GlitchFrames = %d, want 4", enemy.GlitchFrames)
	}
}
