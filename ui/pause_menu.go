package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/pixeldrift/cartdash/components"
)

// PauseMenu holds the ebitenui interface shown while the run is paused.
type PauseMenu struct {
	UI      *ebitenui.UI
	Session *components.SessionData

	// Callbacks
	OnResume      func()
	OnRetry       func()
	OnToggleMusic func(enabled bool)
	OnToggleSound func(enabled bool)

	musicButton *widget.Button
	soundButton *widget.Button

	titleFace  text.Face
	normalFace text.Face
}

// NewPauseMenu creates the pause menu. The callbacks are invoked from
// ebitenui's click handlers during UI.Update.
func NewPauseMenu(session *components.SessionData, onResume, onRetry func(), onToggleMusic, onToggleSound func(bool)) *PauseMenu {
	pm := &PauseMenu{
		Session:       session,
		OnResume:      onResume,
		OnRetry:       onRetry,
		OnToggleMusic: onToggleMusic,
		OnToggleSound: onToggleSound,
	}

	pm.loadFonts()
	pm.buildUI()

	return pm
}

func (pm *PauseMenu) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	pm.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   28,
	}
	pm.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
}

func (pm *PauseMenu) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{10, 10, 20, 180})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("PAUSED", &pm.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(pm.makeButton("Resume", func() {
		if pm.OnResume != nil {
			pm.OnResume()
		}
	}))

	contentContainer.AddChild(pm.makeButton("Retry", func() {
		if pm.OnRetry != nil {
			pm.OnRetry()
		}
	}))

	pm.musicButton = pm.makeButton(pm.musicLabel(), func() {
		if pm.OnToggleMusic != nil {
			pm.OnToggleMusic(!pm.Session.MusicEnabled)
		}
		pm.Refresh()
	})
	contentContainer.AddChild(pm.musicButton)

	pm.soundButton = pm.makeButton(pm.soundLabel(), func() {
		if pm.OnToggleSound != nil {
			pm.OnToggleSound(!pm.Session.SoundEnabled)
		}
		pm.Refresh()
	})
	contentContainer.AddChild(pm.soundButton)

	rootContainer.AddChild(contentContainer)

	pm.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Refresh syncs the toggle labels with the session state.
func (pm *PauseMenu) Refresh() {
	if textWidget := pm.musicButton.Text(); textWidget != nil {
		textWidget.Label = pm.musicLabel()
	}
	if textWidget := pm.soundButton.Text(); textWidget != nil {
		textWidget.Label = pm.soundLabel()
	}
}

func (pm *PauseMenu) makeButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(180, 32),
		),
		widget.ButtonOpts.Image(pm.buttonImage()),
		widget.ButtonOpts.Text(label, &pm.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (pm *PauseMenu) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (pm *PauseMenu) musicLabel() string {
	return fmt.Sprintf("Music: %s", onOff(pm.Session.MusicEnabled))
}

func (pm *PauseMenu) soundLabel() string {
	return fmt.Sprintf("Sound: %s", onOff(pm.Session.SoundEnabled))
}

func onOff(enabled bool) string {
	if enabled {
		return "On"
	}
	return "Off"
}
