package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// OverlayData drives the victory/defeat screen fade.
type OverlayData struct {
	Fade   *gween.Tween
	Alpha  float32
	Active bool
}

var Overlay = donburi.NewComponentType[OverlayData]()
