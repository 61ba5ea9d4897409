package components

import (
	"image/color"

	"github.com/pixeldrift/cartdash/config"
	"github.com/yohamta/donburi"
)

// Particle is a short-lived decorative entity. Particles live only inside
// the singleton ParticlesData pool; no other component reads them.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Size    float64
	Kind    config.ParticleKind
	Color   color.RGBA
	Gravity float64
}

// ParticlesData is the singleton particle pool. Spawns past the cap evict
// the oldest live particles first.
type ParticlesData struct {
	Pool []Particle
}

var Particles = donburi.NewComponentType[ParticlesData]()
