package systems

import (
	"math"
	"math/rand"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixeldrift/cartdash/components"
	cfg "github.com/pixeldrift/cartdash/config"
	"github.com/pixeldrift/cartdash/gamemath"
)

// UpdateEnemies runs each enemy's behavior for the tick and then checks
// contact with the player. Runs after UpdatePlayer so defeat detection
// sees the player state computed this tick, not a stale one.
func UpdateEnemies(e *ecs.ECS) {
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		if !enemy.Active {
			return
		}

		physics := components.Physics.Get(entry)
		state := components.State.Get(entry)
		obj := components.Object.Get(entry).Object

		switch enemy.Kind {
		case cfg.EnemyShuffler:
			updateShuffler(enemy, physics, state, obj)
		case cfg.EnemyKraken:
			updateKraken(enemy, state, obj)
		case cfg.EnemyZombie:
			updateZombie(enemy, physics, state, obj)
		}

		advanceEnemyAnimation(enemy)
		checkPlayerContact(e, entry, enemy, obj)
	})
}

// updateShuffler patrols at constant speed, reversing at the world edges.
// Every so often it glitches: freezes in a damage pose for a short window
// before resuming.
func updateShuffler(enemy *components.EnemyData, physics *components.PhysicsData, state *components.StateData, obj *resolv.Object) {
	if enemy.GlitchFrames > 0 {
		enemy.GlitchFrames--
		state.CurrentState = cfg.Damage
		return
	}

	typ := cfg.Enemy.Types[cfg.EnemyShuffler]
	if rand.Float64() < typ.GlitchChance {
		enemy.GlitchFrames = typ.GlitchFrames
		state.CurrentState = cfg.Damage
		return
	}

	obj.X += physics.SpeedX * enemy.Direction
	reverseAtWorldEdges(enemy, obj)
	state.CurrentState = cfg.Walk
}

// updateKraken bobs vertically around its anchor and never moves
// horizontally.
func updateKraken(enemy *components.EnemyData, state *components.StateData, obj *resolv.Object) {
	typ := cfg.Enemy.Types[cfg.EnemyKraken]
	enemy.FloatPhase += typ.FloatRate
	obj.Y = enemy.BaseY + math.Sin(enemy.FloatPhase)*typ.FloatAmplitude
	state.CurrentState = cfg.Idle
}

// updateZombie shambles slowly, occasionally lurching to a fresh random
// speed.
func updateZombie(enemy *components.EnemyData, physics *components.PhysicsData, state *components.StateData, obj *resolv.Object) {
	typ := cfg.Enemy.Types[cfg.EnemyZombie]
	if rand.Float64() < typ.LurchChance {
		physics.SpeedX = typ.Speed * (0.4 + rand.Float64()*1.2)
	}

	obj.X += physics.SpeedX * enemy.Direction
	reverseAtWorldEdges(enemy, obj)
	state.CurrentState = cfg.Walk
}

func reverseAtWorldEdges(enemy *components.EnemyData, obj *resolv.Object) {
	if obj.X <= 0 {
		obj.X = 0
		enemy.Direction = cfg.DirectionRight
	} else if obj.X+obj.W >= float64(cfg.C.Width) {
		obj.X = float64(cfg.C.Width) - obj.W
		enemy.Direction = cfg.DirectionLeft
	}
}

// checkPlayerContact applies the contact outcome: a dashing player
// deactivates the enemy for the rest of the run, anything else costs the
// player a health point and knocks it back.
func checkPlayerContact(e *ecs.ECS, enemyEntry *donburi.Entry, enemy *components.EnemyData, enemyObject *resolv.Object) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}

	player := components.Player.Get(playerEntry)
	if player.InvulnFrames > 0 {
		return
	}

	playerObject := components.Object.Get(playerEntry).Object
	if !gamemath.Overlaps(
		playerObject.X, playerObject.Y, playerObject.W, playerObject.H,
		enemyObject.X, enemyObject.Y, enemyObject.W, enemyObject.H,
	) {
		return
	}

	session := MustFindSession(e)
	playerState := components.State.Get(playerEntry)

	if playerState.CurrentState == cfg.Dashing {
		enemy.Active = false
		session.Score += cfg.Enemy.DefeatBonus
		SpawnBurst(e, cfg.ParticleExplosion, enemyObject.X+enemyObject.W/2, enemyObject.Y+enemyObject.H/2)
		TriggerShake(session, cfg.ScreenShake.DefeatMagnitude, cfg.ScreenShake.DefeatFrames)
		PlaySFX(e, cfg.SoundDefeat)
		return
	}

	playerPhysics := components.Physics.Get(playerEntry)
	player.Health--
	player.InvulnFrames = cfg.Player.InvulnFrames
	playerPhysics.SpeedX = -cfg.Player.KnockbackSpeed * player.Facing
	enterState(playerState, cfg.Damage)
	TriggerShake(session, cfg.ScreenShake.DamageMagnitude, cfg.ScreenShake.DamageFrames)
	PlaySFX(e, cfg.SoundDamage)

	enemyState := components.State.Get(enemyEntry)
	enemyState.CurrentState = cfg.Attack
	enemy.AttackCooldown = 30
}

func advanceEnemyAnimation(enemy *components.EnemyData) {
	enemy.AnimTimer++
	if enemy.AnimTimer%8 == 0 {
		enemy.AnimFrame = (enemy.AnimFrame + 1) % 4
	}
	if enemy.AttackCooldown > 0 {
		enemy.AttackCooldown--
	}
}
