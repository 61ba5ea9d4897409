package components

import (
	"github.com/pixeldrift/cartdash/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Kind   config.EnemyKind
	Health int // flavor only; a dash hit deactivates regardless
	Active bool

	Direction      float64
	AttackCooldown int

	// Original placement, restored on run reset.
	SpawnX float64
	SpawnY float64

	// Shuffler glitch pose, counted down in frames rather than scheduled.
	GlitchFrames int

	// Kraken float oscillation.
	FloatPhase float64
	BaseY      float64

	AnimFrame int
	AnimTimer int
}

var Enemy = donburi.NewComponentType[EnemyData]()
