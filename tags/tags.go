package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
	Token    = donburi.NewTag().SetName("Token")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Powerup  = donburi.NewTag().SetName("Powerup")
	Goal     = donburi.NewTag().SetName("Goal")
)

// Resolv tags for collision space queries
const (
	ResolvSolid   = "solid"
	ResolvPlayer  = "player"
	ResolvToken   = "token"
	ResolvEnemy   = "enemy"
	ResolvPowerup = "powerup"
	ResolvGoal    = "goal"
)
