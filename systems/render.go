package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixeldrift/cartdash/components"
	cfg "github.com/pixeldrift/cartdash/config"
)

// Flat palette for the placeholder art style. Entity colors that vary by
// kind live in config instead.
var (
	skyColor        = color.RGBA{R: 24, G: 26, B: 40, A: 255}
	platformColor   = color.RGBA{R: 110, G: 90, B: 70, A: 255}
	crumblingTint   = color.RGBA{R: 140, G: 100, B: 60, A: 255}
	movingTint      = color.RGBA{R: 90, G: 110, B: 140, A: 255}
	playerColor     = color.RGBA{R: 240, G: 200, B: 80, A: 255}
	playerHurtColor = color.RGBA{R: 240, G: 90, B: 70, A: 255}
	tokenColor      = color.RGBA{R: 250, G: 210, B: 60, A: 255}
	gemColor        = color.RGBA{R: 90, G: 220, B: 240, A: 255}
	powerupColor    = color.RGBA{R: 200, G: 110, B: 240, A: 255}
	goalColor       = color.RGBA{R: 70, G: 200, B: 110, A: 255}
)

// shakeOffset converts the session's shake state into this frame's
// camera displacement. Intensity decays linearly over the shake window.
func shakeOffset(session *components.SessionData) (float64, float64) {
	if session.ShakeFrames <= 0 || session.ShakeMagnitude == 0 {
		return 0, 0
	}
	total := session.ShakeFrames + session.ShakeElapsed
	progress := float64(session.ShakeFrames) / float64(total)
	intensity := session.ShakeMagnitude * progress

	x := math.Sin(float64(session.ShakeElapsed)*cfg.ScreenShake.OscillationRateX) * intensity
	y := math.Cos(float64(session.ShakeElapsed)*cfg.ScreenShake.OscillationRateY) * intensity
	return x, y
}

// DrawParallax paints the sky and the scrolling background bands. The
// bands ignore screen shake so the foreground reads as the thing moving.
func DrawParallax(e *ecs.ECS, screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(cfg.C.Width), float32(cfg.C.Height), skyColor, false)

	entry, ok := components.Parallax.First(e.World)
	if !ok {
		return
	}
	parallax := components.Parallax.Get(entry)

	for i, layer := range cfg.Parallax.Layers {
		if i >= len(parallax.Offsets) {
			break
		}
		offset := parallax.Offsets[i]
		// Draw twice so the band tiles across the wrap seam.
		for _, base := range []float64{offset - float64(cfg.C.Width), offset} {
			vector.DrawFilledRect(screen,
				float32(base), float32(layer.Y),
				float32(cfg.C.Width), float32(layer.Height),
				layer.Color, false)
		}
	}
}

// DrawLevel renders platforms and the goal region.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	session := MustFindSession(e)
	shakeX, shakeY := shakeOffset(session)

	components.Platform.Each(e.World, func(entry *donburi.Entry) {
		platform := components.Platform.Get(entry)
		obj := components.Object.Get(entry)

		c := platformColor
		switch platform.Kind {
		case cfg.PlatformCrumbling:
			c = crumblingTint
			// Flicker to telegraph instability
			if (platform.CrumbleTick/20)%2 == 1 {
				c.A = 170
			}
		case cfg.PlatformMoving:
			c = movingTint
		}

		vector.DrawFilledRect(screen,
			float32(obj.X+shakeX), float32(obj.Y+shakeY),
			float32(obj.W), float32(obj.H), c, false)
	})

	vector.DrawFilledRect(screen,
		float32(cfg.Goal.X+shakeX), float32(cfg.Goal.Y+shakeY),
		float32(cfg.Goal.W), float32(cfg.Goal.H), goalColor, false)
}

// DrawEntities renders tokens, power-ups, enemies and the player.
func DrawEntities(e *ecs.ECS, screen *ebiten.Image) {
	session := MustFindSession(e)
	shakeX, shakeY := shakeOffset(session)

	components.Token.Each(e.World, func(entry *donburi.Entry) {
		token := components.Token.Get(entry)
		if token.Collected {
			return
		}
		obj := components.Object.Get(entry)

		c := tokenColor
		if token.Kind == cfg.TokenGem {
			c = gemColor
		}
		// Bob with the animation frame
		bob := float64(token.AnimFrame%2) * 2
		r := obj.W / 2
		vector.DrawFilledCircle(screen,
			float32(obj.X+r+shakeX), float32(obj.Y+r+bob+shakeY),
			float32(r), c, false)
	})

	components.Powerup.Each(e.World, func(entry *donburi.Entry) {
		powerup := components.Powerup.Get(entry)
		if powerup.Collected {
			return
		}
		obj := components.Object.Get(entry)
		bob := float64(powerup.AnimFrame%2) * 2
		vector.DrawFilledRect(screen,
			float32(obj.X+shakeX), float32(obj.Y+bob+shakeY),
			float32(obj.W), float32(obj.H), powerupColor, false)
	})

	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		if !enemy.Active {
			return
		}
		obj := components.Object.Get(entry)
		state := components.State.Get(entry)

		c := cfg.Enemy.Types[enemy.Kind].Color
		if state.CurrentState == cfg.Damage {
			c.A = 150
		}
		vector.DrawFilledRect(screen,
			float32(obj.X+shakeX), float32(obj.Y+shakeY),
			float32(obj.W), float32(obj.H), c, false)
	})

	drawPlayer(e, screen, shakeX, shakeY)
}

func drawPlayer(e *ecs.ECS, screen *ebiten.Image, shakeX, shakeY float64) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	state := components.State.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	// Invulnerability blink
	if player.InvulnFrames > 0 && (player.InvulnFrames/4)%2 == 1 {
		return
	}

	c := playerColor
	if state.CurrentState == cfg.Damage {
		c = playerHurtColor
	}

	// Lean forward a touch while dashing
	lean := float64(0)
	if state.CurrentState == cfg.Dashing {
		lean = 3 * player.Facing
	}

	vector.DrawFilledRect(screen,
		float32(obj.X+lean+shakeX), float32(obj.Y+shakeY),
		float32(obj.W), float32(obj.H), c, false)

	// Facing marker
	eyeX := obj.X + obj.W/2 + (obj.W/4)*player.Facing
	vector.DrawFilledCircle(screen,
		float32(eyeX+lean+shakeX), float32(obj.Y+10+shakeY),
		3, color.RGBA{R: 20, G: 20, B: 30, A: 255}, false)
}

// DrawParticles renders the particle pool with alpha fading out over
// each particle's remaining life.
func DrawParticles(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Particles.First(e.World)
	if !ok {
		return
	}
	particles := components.Particles.Get(entry)

	session := MustFindSession(e)
	shakeX, shakeY := shakeOffset(session)

	for i := range particles.Pool {
		p := &particles.Pool[i]
		c := p.Color
		if p.MaxLife > 0 {
			c.A = uint8(255 * p.Life / p.MaxLife)
		}
		vector.DrawFilledCircle(screen,
			float32(p.X+shakeX), float32(p.Y+shakeY),
			float32(p.Size), c, false)
	}
}
