package components

import "github.com/yohamta/donburi"

// ParallaxData tracks the scroll offset of each cosmetic background band.
type ParallaxData struct {
	Offsets []float64
}

var Parallax = donburi.NewComponentType[ParallaxData]()
