package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/yohamta/donburi/ecs"

	"github.com/pixeldrift/cartdash/components"
	cfg "github.com/pixeldrift/cartdash/config"
	"github.com/pixeldrift/cartdash/fonts"
)

var (
	pipFullColor  = color.RGBA{R: 230, G: 70, B: 80, A: 255}
	pipEmptyColor = color.RGBA{R: 70, G: 60, B: 65, A: 255}
)

// DrawHUD renders score, token count, health pips, the run clock and the
// dash meter along the top of the screen.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	session := MustFindSession(e)
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	margin := cfg.HUD.Margin
	face := fonts.HUD.Get()

	text.Draw(screen, fmt.Sprintf("SCORE %d", session.Score), face, int(margin), int(margin)+14, cfg.HUD.TextColor)
	text.Draw(screen, fmt.Sprintf("TOKENS %d", session.Tokens), face, int(margin), int(margin)+34, cfg.HUD.TextColor)

	// Health pips
	for i := 0; i < cfg.Player.Health; i++ {
		c := pipEmptyColor
		if i < player.Health {
			c = pipFullColor
		}
		x := margin + float64(i)*(cfg.HUD.PipSize+cfg.HUD.PipGap)
		vector.DrawFilledRect(screen,
			float32(x), float32(margin+44),
			float32(cfg.HUD.PipSize), float32(cfg.HUD.PipSize), c, false)
	}

	// Run clock, top center
	minutes := int(session.Elapsed) / 60
	seconds := int(session.Elapsed) % 60
	clock := fmt.Sprintf("%02d:%02d", minutes, seconds)
	text.Draw(screen, clock, fonts.HUDBig.Get(), cfg.C.Width/2-24, int(margin)+18, cfg.HUD.TextColor)

	// Dash meter, top right; fills back up as the cooldown empties
	meterX := float64(cfg.C.Width) - margin - cfg.HUD.MeterWidth
	vector.DrawFilledRect(screen,
		float32(meterX), float32(margin),
		float32(cfg.HUD.MeterWidth), float32(cfg.HUD.MeterHeight),
		cfg.HUD.MeterBgColor, false)

	ready := 1.0 - float64(player.DashCooldown)/float64(cfg.Player.DashCooldownFrames)
	vector.DrawFilledRect(screen,
		float32(meterX), float32(margin),
		float32(cfg.HUD.MeterWidth*ready), float32(cfg.HUD.MeterHeight),
		cfg.HUD.MeterFgColor, false)
	text.Draw(screen, "DASH", face, int(meterX), int(margin)+24, cfg.HUD.TextColor)
}

// DrawOverlay renders the victory/defeat screen once the fade kicks in.
func DrawOverlay(e *ecs.ECS, screen *ebiten.Image) {
	session := MustFindSession(e)
	if !session.GameOver && !session.Victory {
		return
	}

	entry, ok := components.Overlay.First(e.World)
	if !ok {
		return
	}
	overlay := components.Overlay.Get(entry)

	tint := cfg.Overlay.DefeatColor
	title := "GAME OVER"
	if session.Victory {
		tint = cfg.Overlay.VictoryColor
		title = "COLLECTION COMPLETE!"
	}
	tint.A = uint8(255 * overlay.Alpha)
	vector.DrawFilledRect(screen, 0, 0, float32(cfg.C.Width), float32(cfg.C.Height), tint, false)

	face := fonts.Overlay.Get()
	titleX := cfg.C.Width/2 - len(title)*7
	text.Draw(screen, title, face, titleX, cfg.C.Height/2-20, cfg.HUD.TextColor)

	summary := fmt.Sprintf("Score %d   Tokens %d   Time %02d:%02d",
		session.Score, session.Tokens, int(session.Elapsed)/60, int(session.Elapsed)%60)
	text.Draw(screen, summary, fonts.HUD.Get(), cfg.C.Width/2-len(summary)*4, cfg.C.Height/2+16, cfg.HUD.TextColor)

	hint := "Press R to retry"
	text.Draw(screen, hint, fonts.HUD.Get(), cfg.C.Width/2-len(hint)*4, cfg.C.Height/2+44, cfg.HUD.TextColor)
}
