package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixeldrift/cartdash/archetypes"
	"github.com/pixeldrift/cartdash/assets"
	"github.com/pixeldrift/cartdash/components"
	cfg "github.com/pixeldrift/cartdash/config"
	"github.com/pixeldrift/cartdash/tags"
)

// CreateSpace builds the collision space for the playfield.
func CreateSpace(ecs *ecs.ECS) *resolv.Space {
	spaceEntry := archetypes.Space.Spawn(ecs)
	space := resolv.NewSpace(cfg.C.Width, cfg.C.Height, 16, 16)
	components.Space.SetValue(spaceEntry, components.SpaceData{Space: space})
	return space
}

// CreateSession spawns the singleton run state.
func CreateSession(ecs *ecs.ECS, level string) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		Level:        level,
		MusicEnabled: true,
		SoundEnabled: true,
	})
	return session
}

// CreateParticles spawns the singleton particle pool.
func CreateParticles(ecs *ecs.ECS) *donburi.Entry {
	particles := archetypes.Particles.Spawn(ecs)
	components.Particles.SetValue(particles, components.ParticlesData{
		Pool: make([]components.Particle, 0, cfg.Particle.MaxLive),
	})
	return particles
}

// CreateParallax spawns the background band offsets.
func CreateParallax(ecs *ecs.ECS) *donburi.Entry {
	parallax := archetypes.Parallax.Spawn(ecs)
	components.Parallax.SetValue(parallax, components.ParallaxData{
		Offsets: make([]float64, len(cfg.Parallax.Layers)),
	})
	return parallax
}

// CreateOverlay spawns the terminal-screen fade state.
func CreateOverlay(ecs *ecs.ECS) *donburi.Entry {
	overlay := archetypes.Overlay.Spawn(ecs)
	components.Overlay.SetValue(overlay, components.OverlayData{})
	return overlay
}

// CreateGoal places the victory region in the collision space. The goal
// is render-only; victory itself is a position threshold test.
func CreateGoal(ecs *ecs.ECS, space *resolv.Space, def assets.RectDef) *donburi.Entry {
	goal := archetypes.Goal.Spawn(ecs)

	obj := resolv.NewObject(def.X, def.Y, def.W, def.H)
	obj.AddTags(tags.ResolvGoal)
	obj.Data = goal
	space.Add(obj)
	components.Object.SetValue(goal, components.ObjectData{Object: obj})

	return goal
}

// PopulateLevel spawns every entity a loaded level describes and returns
// the player entry.
func PopulateLevel(ecs *ecs.ECS, space *resolv.Space, level *assets.LevelData) *donburi.Entry {
	for _, def := range level.Platforms {
		CreatePlatform(ecs, space, def)
	}
	for _, def := range level.Tokens {
		CreateToken(ecs, space, def)
	}
	for _, def := range level.Powerups {
		CreatePowerup(ecs, space, def)
	}
	for _, def := range level.Enemies {
		CreateEnemy(ecs, space, def)
	}
	CreateGoal(ecs, space, level.Goal)

	spawnX, spawnY := level.SpawnX, level.SpawnY
	if spawnX == 0 && spawnY == 0 {
		spawnX, spawnY = cfg.Player.SpawnX, cfg.Player.SpawnY
	}
	return CreatePlayer(ecs, space, spawnX, spawnY)
}
