package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixeldrift/cartdash/components"
	cfg "github.com/pixeldrift/cartdash/config"
	"github.com/pixeldrift/cartdash/gamemath"
	"github.com/pixeldrift/cartdash/tags"
)

// UpdateCollectibles advances token/power-up animation and awards the
// ones the player touches. Collection is idempotent: the collected flag
// flips once and the score is added exactly once.
func UpdateCollectibles(e *ecs.ECS) {
	components.Token.Each(e.World, func(entry *donburi.Entry) {
		token := components.Token.Get(entry)
		token.AnimTimer++
		if token.AnimTimer%8 == 0 {
			token.AnimFrame = (token.AnimFrame + 1) % 4
		}
	})
	components.Powerup.Each(e.World, func(entry *donburi.Entry) {
		powerup := components.Powerup.Get(entry)
		powerup.AnimTimer++
		if powerup.AnimTimer%8 == 0 {
			powerup.AnimFrame = (powerup.AnimFrame + 1) % 4
		}
	})

	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)
	session := MustFindSession(e)

	// Broad phase via the collision space, exact half-open overlap as the
	// narrow phase.
	if check := playerObject.Check(0, 0, tags.ResolvToken); check != nil {
		for _, obj := range check.ObjectsByTags(tags.ResolvToken) {
			entry, ok := obj.Data.(*donburi.Entry)
			if !ok || entry == nil {
				continue
			}
			token := components.Token.Get(entry)
			if token.Collected {
				continue
			}
			if !gamemath.Overlaps(
				playerObject.X, playerObject.Y, playerObject.W, playerObject.H,
				obj.X, obj.Y, obj.W, obj.H,
			) {
				continue
			}

			token.Collected = true
			switch token.Kind {
			case cfg.TokenGem:
				session.Score += cfg.Token.GemValue
			default:
				session.Score += cfg.Token.CurrencyValue
				session.Tokens++
			}
			SpawnPickupBurst(e, obj.X+obj.W/2, obj.Y+obj.H/2)
			PlaySFX(e, cfg.SoundToken)
		}
	}

	if check := playerObject.Check(0, 0, tags.ResolvPowerup); check != nil {
		for _, obj := range check.ObjectsByTags(tags.ResolvPowerup) {
			entry, ok := obj.Data.(*donburi.Entry)
			if !ok || entry == nil {
				continue
			}
			powerup := components.Powerup.Get(entry)
			if powerup.Collected {
				continue
			}
			if !gamemath.Overlaps(
				playerObject.X, playerObject.Y, playerObject.W, playerObject.H,
				obj.X, obj.Y, obj.W, obj.H,
			) {
				continue
			}

			powerup.Collected = true
			powerup.Duration = cfg.Powerup.Duration
			session.Score += cfg.Powerup.ScoreBonus
			SpawnPickupBurst(e, obj.X+obj.W/2, obj.Y+obj.H/2)
			PlaySFX(e, cfg.SoundPowerup)
		}
	}
}
