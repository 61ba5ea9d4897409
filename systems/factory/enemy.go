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

func CreateEnemy(ecs *ecs.ECS, space *resolv.Space, def assets.EnemyDef) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)
	typ := cfg.Enemy.Types[def.Kind]

	obj := resolv.NewObject(def.X, def.Y, typ.Width, typ.Height)
	obj.AddTags(tags.ResolvEnemy)
	obj.Data = enemy
	space.Add(obj)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:      def.Kind,
		Health:    typ.Health,
		Active:    true,
		Direction: cfg.DirectionRight,
		SpawnX:    def.X,
		SpawnY:    def.Y,
		BaseY:     def.Y,
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		SpeedX:   typ.Speed,
		MaxSpeed: typ.Speed,
	})

	return enemy
}
