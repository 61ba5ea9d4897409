package archetypes

import (
	"github.com/pixeldrift/cartdash/components"
	cfg "github.com/pixeldrift/cartdash/config"
	"github.com/pixeldrift/cartdash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.State,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
		components.Object,
	)
	Token = newArchetype(
		tags.Token,
		components.Token,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Physics,
		components.State,
	)
	Powerup = newArchetype(
		tags.Powerup,
		components.Powerup,
		components.Object,
	)
	Goal = newArchetype(
		tags.Goal,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Session = newArchetype(
		components.Session,
	)
	Particles = newArchetype(
		components.Particles,
	)
	Parallax = newArchetype(
		components.Parallax,
	)
	Overlay = newArchetype(
		components.Overlay,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
