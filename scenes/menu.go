package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2

	cfg "github.com/pixeldrift/cartdash/config"
	"github.com/pixeldrift/cartdash/fonts"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title screen.
type MenuScene struct {
	sceneChanger SceneChanger
	blinkTimer   int
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.blinkTimer++

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 18, G: 20, B: 32, A: 255})

	title := "CART DASH"
	text.Draw(screen, title, fonts.Title.Get(), cfg.C.Width/2-110, cfg.C.Height/2-60, color.RGBA{R: 250, G: 210, B: 60, A: 255})

	sub := "Grab the tokens, dash the bots, reach the checkout."
	text.Draw(screen, sub, fonts.Menu.Get(), cfg.C.Width/2-180, cfg.C.Height/2-16, cfg.HUD.TextColor)

	if (ms.blinkTimer/30)%2 == 0 {
		hint := "Press Enter to start"
		text.Draw(screen, hint, fonts.Menu.Get(), cfg.C.Width/2-80, cfg.C.Height/2+40, cfg.HUD.TextColor)
	}

	controls := "Arrows/WASD move   Space jump   Shift dash   Esc pause   R retry"
	text.Draw(screen, controls, fonts.HUD.Get(), cfg.C.Width/2-200, cfg.C.Height-30, color.RGBA{R: 150, G: 150, B: 160, A: 255})
}
