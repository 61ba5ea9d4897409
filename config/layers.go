package config

import "github.com/yohamta/donburi/ecs"

// Default is the single render layer; the playfield is one screen.
const Default ecs.LayerID = 0
