package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	Facing  float64 // config.DirectionLeft or config.DirectionRight
	Health  int
	Grounded bool

	// Jump assistance windows, all in frames.
	CoyoteFrames     int
	JumpBufferFrames int
	CanDoubleJump    bool
	DoubleJumpUsed   bool

	DashCooldown int
	InvulnFrames int

	SpawnX float64
	SpawnY float64

	AnimFrame int
	AnimTimer int
}

var Player = donburi.NewComponentType[PlayerData]()
