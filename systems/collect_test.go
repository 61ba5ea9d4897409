package systems

import (
	"testing"

	"github.com/pixeldrift/cartdash/assets"
	"github.com/pixeldrift/cartdash/components"
	cfg "github.com/pixeldrift/cartdash/config"
	"github.com/pixeldrift/cartdash/systems/factory"
)

func TestCurrencyTokenCollection(t *testing.T) {
	tw := newTestWorld()
	tw.settle()

	obj := tw.playerObject()
	entry := factory.CreateToken(tw.ecs, tw.space, assets.TokenDef{
		X: obj.X, Y: obj.Y, Kind: cfg.TokenCurrency,
	})
	token := components.Token.Get(entry)
	session := MustFindSession(tw.ecs)

	particlesEntry, _ := components.Particles.First(tw.ecs.World)
	particles := components.Particles.Get(particlesEntry)
	particles.Pool = particles.Pool[:0]

	UpdateCollectibles(tw.ecs)

	if !token.Collected {
		t.Fatal("token not collected on overlap")
	}
	if session.Score != cfg.Token.CurrencyValue {
		t.Errorf("score = %d, want %d", session.Score, cfg.Token.CurrencyValue)
	}
	if session.Tokens != 1 {
		t.Errorf("token count = %d, want 1", session.Tokens)
	}
	if len(particles.Pool) == 0 {
		t.Error("no pickup burst spawned")
	}

	// Second tick: still overlapping, no double award
	UpdateCollectibles(tw.ecs)
	if session.Score != cfg.Token.CurrencyValue {
		t.Errorf("score = %d after second tick, token awarded twice", session.Score)
	}
	if session.Tokens != 1 {
		t.Errorf("token count = %d after second tick, want 1", session.Tokens)
	}
}

func TestGemTokenScoresWithoutCount(t *testing.T) {
	tw := newTestWorld()
	tw.settle()

	obj := tw.playerObject()
	factory.CreateToken(tw.ecs, tw.space, assets.TokenDef{
		X: obj.X, Y: obj.Y, Kind: cfg.TokenGem,
	})
	session := MustFindSession(tw.ecs)

	UpdateCollectibles(tw.ecs)

	if session.Score != cfg.Token.GemValue {
		t.Errorf("score = %d, want %d", session.Score, cfg.Token.GemValue)
	}
	if session.Tokens != 0 {
		t.Errorf("token count = %d, gems must not count as currency", session.Tokens)
	}
}

func TestDistantTokenStaysUncollected(t *testing.T) {
	tw := newTestWorld()
	tw.settle()

	entry := factory.CreateToken(tw.ecs, tw.space, assets.TokenDef{
		X: 1000, Y: 100, Kind: cfg.TokenCurrency,
	})
	token := components.Token.Get(entry)

	UpdateCollectibles(tw.ecs)

	if token.Collected {
		t.Error("distant token was collected")
	}
	if token.AnimTimer == 0 {
		t.Error("token animation should advance regardless of collection")
	}
}

func TestPowerupCollection(t *testing.T) {
	tw := newTestWorld()
	tw.settle()

	obj := tw.playerObject()
	entry := factory.CreatePowerup(tw.ecs, tw.space, assets.PowerupDef{
		X: obj.X, Y: obj.Y, Kind: cfg.PowerupCheckoutDash,
	})
	powerup := components.Powerup.Get(entry)
	session := MustFindSession(tw.ecs)

	UpdateCollectibles(tw.ecs)

	if !powerup.Collected {
		t.Fatal("powerup not collected on overlap")
	}
	if session.Score != cfg.Powerup.ScoreBonus {
		t.Errorf("score = %d, want %d", session.Score, cfg.Powerup.ScoreBonus)
	}
	if powerup.Duration != cfg.Powerup.Duration {
		t.Errorf("duration = %d, want %d", powerup.Duration, cfg.Powerup.Duration)
	}

	UpdateCollectibles(tw.ecs)
	if session.Score != cfg.Powerup.ScoreBonus {
		t.Errorf("score = %d after second tick, bonus awarded twice", session.Score)
	}
}
