package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixeldrift/cartdash/components"
	cfg "github.com/pixeldrift/cartdash/config"
	"github.com/pixeldrift/cartdash/gamemath"
)

func UpdatePlayer(e *ecs.ECS) {
	components.Player.Each(e.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(e, playerEntry)
	})
}

func updateSinglePlayer(e *ecs.ECS, playerEntry *donburi.Entry) {
	input := getOrCreateInput(e)
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	state := components.State.Get(playerEntry)
	playerObject := components.Object.Get(playerEntry).Object

	updateAssistWindows(input, player)
	handleMovementInput(input, player, physics)
	handleJumpInput(e, player, physics, state, playerObject)
	handleDashInput(e, input, player, physics, state, playerObject)
	applyGravity(player, physics)
	resolveMovement(e, player, physics, playerObject)
	checkFallOut(e, player, physics, state, playerObject)
	updatePlayerState(player, physics, state)
	advancePlayerAnimation(player, state)

	if player.DashCooldown > 0 {
		player.DashCooldown--
	}
	if player.InvulnFrames > 0 {
		player.InvulnFrames--
	}
}

// updateAssistWindows refreshes the coyote and jump-buffer counters.
// Coyote refills every grounded tick; the buffer arms on a fresh press.
func updateAssistWindows(input *components.InputData, player *components.PlayerData) {
	if player.Grounded {
		player.CoyoteFrames = cfg.Player.CoyoteFrames
		player.DoubleJumpUsed = false
	} else if player.CoyoteFrames > 0 {
		player.CoyoteFrames--
	}

	if GetAction(input, cfg.ActionJump).JustPressed {
		player.JumpBufferFrames = cfg.Player.JumpBufferFrames
	} else if player.JumpBufferFrames > 0 {
		player.JumpBufferFrames--
	}
}

func handleMovementInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData) {
	moveLeft := GetAction(input, cfg.ActionMoveLeft)
	moveRight := GetAction(input, cfg.ActionMoveRight)

	driving := moveLeft.Pressed != moveRight.Pressed

	switch {
	case moveRight.Pressed && !moveLeft.Pressed:
		physics.SpeedX += physics.Accel
		player.Facing = cfg.DirectionRight
	case moveLeft.Pressed && !moveRight.Pressed:
		physics.SpeedX -= physics.Accel
		player.Facing = cfg.DirectionLeft
	default:
		physics.SpeedX *= physics.Friction
		if player.Grounded && gamemath.Abs(physics.SpeedX) < cfg.Player.StopEpsilon {
			physics.SpeedX = 0
		}
	}

	// Normal drive caps at MaxSpeed. A dash overshoots the cap and bleeds
	// the excess off through friction; the no-input branch above already
	// applied it.
	if physics.SpeedX > physics.MaxSpeed {
		if driving {
			physics.SpeedX *= physics.Friction
		}
		if physics.SpeedX < physics.MaxSpeed {
			physics.SpeedX = physics.MaxSpeed
		}
	} else if physics.SpeedX < -physics.MaxSpeed {
		if driving {
			physics.SpeedX *= physics.Friction
		}
		if physics.SpeedX > -physics.MaxSpeed {
			physics.SpeedX = -physics.MaxSpeed
		}
	}
}

func handleJumpInput(e *ecs.ECS, player *components.PlayerData, physics *components.PhysicsData, state *components.StateData, playerObject *resolv.Object) {
	input := getOrCreateInput(e)
	jumpAction := GetAction(input, cfg.ActionJump)

	if player.JumpBufferFrames > 0 {
		switch {
		case player.CoyoteFrames > 0:
			// Ground (or coyote) jump
			physics.SpeedY = cfg.Player.JumpImpulse
			player.JumpBufferFrames = 0
			player.CoyoteFrames = 0
			player.Grounded = false
			enterState(state, cfg.Jumping)
			PlaySFX(e, cfg.SoundJump)
			SpawnBurst(e, cfg.ParticleDust, playerObject.X+playerObject.W/2, playerObject.Y+playerObject.H)
		case player.CanDoubleJump && !player.DoubleJumpUsed:
			physics.SpeedY = cfg.Player.JumpImpulse
			player.JumpBufferFrames = 0
			player.DoubleJumpUsed = true
			enterState(state, cfg.Jumping)
			PlaySFX(e, cfg.SoundJump)
			SpawnBurst(e, cfg.ParticleDust, playerObject.X+playerObject.W/2, playerObject.Y+playerObject.H)
		}
	}

	// Variable jump height: releasing while still rising fast cuts the
	// ascent in half.
	if jumpAction.JustReleased && physics.SpeedY < -cfg.Player.JumpCutThreshold {
		physics.SpeedY /= 2
	}
}

func handleDashInput(e *ecs.ECS, input *components.InputData, player *components.PlayerData, physics *components.PhysicsData, state *components.StateData, playerObject *resolv.Object) {
	// Dash fires on hold, so keeping the key down re-dashes every time
	// the cooldown empties.
	if !GetAction(input, cfg.ActionDash).Pressed {
		return
	}
	if player.DashCooldown > 0 {
		return
	}

	physics.SpeedX = cfg.Player.DashSpeed * player.Facing
	player.DashCooldown = cfg.Player.DashCooldownFrames
	enterState(state, cfg.Dashing)
	PlaySFX(e, cfg.SoundDash)
	SpawnBurst(e, cfg.ParticleSpark, playerObject.X+playerObject.W/2, playerObject.Y+playerObject.H/2)
}

func applyGravity(player *components.PlayerData, physics *components.PhysicsData) {
	if player.Grounded {
		return
	}
	physics.SpeedY += physics.Gravity
	if physics.SpeedY > cfg.Physics.MaxFallSpeed {
		physics.SpeedY = cfg.Physics.MaxFallSpeed
	}
}

// resolveMovement integrates velocity and resolves the player against
// every platform. Moving platforms take their patrol step here, just
// before the player resolves against them, so both see the same
// positions within a tick.
func resolveMovement(e *ecs.ECS, player *components.PlayerData, physics *components.PhysicsData, playerObject *resolv.Object) {
	prevTop := playerObject.Y
	prevBottom := playerObject.Y + playerObject.H

	playerObject.X += physics.SpeedX
	playerObject.Y += physics.SpeedY

	wasGrounded := player.Grounded
	player.Grounded = false

	components.Platform.Each(e.World, func(entry *donburi.Entry) {
		platform := components.Platform.Get(entry)
		platObject := components.Object.Get(entry).Object

		AdvanceMovingPlatform(platform, platObject)

		if !gamemath.Overlaps(
			playerObject.X, playerObject.Y, playerObject.W, playerObject.H,
			platObject.X, platObject.Y, platObject.W, platObject.H,
		) {
			return
		}

		switch {
		case physics.SpeedY > 0 && prevBottom <= platObject.Y:
			// Landing: was wholly above the platform last tick
			playerObject.Y = platObject.Y - playerObject.H
			physics.SpeedY = 0
			player.Grounded = true
		case physics.SpeedY < 0 && prevTop >= platObject.Y+platObject.H:
			// Head bump from below
			playerObject.Y = platObject.Y + platObject.H
			physics.SpeedY = 0
		default:
			// Side contact: push out toward the player's center
			if playerObject.X+playerObject.W/2 < platObject.X+platObject.W/2 {
				playerObject.X = platObject.X - playerObject.W
			} else {
				playerObject.X = platObject.X + platObject.W
			}
			physics.SpeedX = 0
		}
	})

	// Standing flush on a platform produces no overlap under the
	// half-open test, so probe one unit down to keep ground contact.
	if !player.Grounded && physics.SpeedY >= 0 {
		components.Platform.Each(e.World, func(entry *donburi.Entry) {
			platObject := components.Object.Get(entry).Object
			if playerObject.Y+playerObject.H > platObject.Y {
				return
			}
			if gamemath.Overlaps(
				playerObject.X, playerObject.Y+1, playerObject.W, playerObject.H,
				platObject.X, platObject.Y, platObject.W, platObject.H,
			) {
				player.Grounded = true
				physics.SpeedY = 0
			}
		})
	}

	if !wasGrounded && player.Grounded {
		SpawnBurst(e, cfg.ParticleDust, playerObject.X+playerObject.W/2, playerObject.Y+playerObject.H)
	}

	playerObject.X = gamemath.Clamp(playerObject.X, 0, float64(cfg.C.Width)-playerObject.W)

	// Refresh the collision space cells so the collector's broad phase
	// sees this tick's position.
	playerObject.Update()
}

// checkFallOut handles dropping off the bottom of the playfield: one
// point of damage and a teleport back to spawn.
func checkFallOut(e *ecs.ECS, player *components.PlayerData, physics *components.PhysicsData, state *components.StateData, playerObject *resolv.Object) {
	if playerObject.Y <= float64(cfg.C.Height) {
		return
	}

	player.Health--
	playerObject.X = player.SpawnX
	playerObject.Y = player.SpawnY
	physics.SpeedX = 0
	physics.SpeedY = 0
	player.Grounded = false
	player.InvulnFrames = cfg.Player.InvulnFrames
	enterState(state, cfg.Damage)
	PlaySFX(e, cfg.SoundDamage)
	TriggerShake(MustFindSession(e), cfg.ScreenShake.FallMagnitude, cfg.ScreenShake.FallFrames)
}

// updatePlayerState runs the movement state machine. The damage pose
// holds for a fixed number of frames, the dash pose holds while the
// player is still faster than MaxSpeed, everything else follows directly
// from velocity and ground contact.
func updatePlayerState(player *components.PlayerData, physics *components.PhysicsData, state *components.StateData) {
	state.StateTimer++

	switch state.CurrentState {
	case cfg.Damage:
		if state.StateTimer < cfg.Player.DamagePoseFrames {
			return
		}
	case cfg.Dashing:
		// An airborne dash yields to the jumping pose; a grounded dash
		// keeps the pose until the burst has bled back below MaxSpeed.
		if player.Grounded && gamemath.Abs(physics.SpeedX) > physics.MaxSpeed {
			return
		}
	}

	transitionToMovementState(player, physics, state)
}

func transitionToMovementState(player *components.PlayerData, physics *components.PhysicsData, state *components.StateData) {
	var next cfg.StateID
	switch {
	case !player.Grounded:
		next = cfg.Jumping
	case gamemath.Abs(physics.SpeedX) >= cfg.Player.StopEpsilon:
		next = cfg.Running
	default:
		next = cfg.Idle
	}
	if next != state.CurrentState {
		enterState(state, next)
	}
}

func enterState(state *components.StateData, next cfg.StateID) {
	state.PreviousState = state.CurrentState
	state.CurrentState = next
	state.StateTimer = 0
}

// advancePlayerAnimation steps the 4-frame animation cycle at a cadence
// that depends on the current pose.
func advancePlayerAnimation(player *components.PlayerData, state *components.StateData) {
	player.AnimTimer++

	cadence := 10
	switch state.CurrentState {
	case cfg.Running:
		cadence = 6
	case cfg.Dashing:
		cadence = 4
	case cfg.Damage:
		cadence = 12
	}

	if player.AnimTimer%cadence == 0 {
		player.AnimFrame = (player.AnimFrame + 1) % 4
	}
}
