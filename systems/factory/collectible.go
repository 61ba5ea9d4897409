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

func CreateToken(ecs *ecs.ECS, space *resolv.Space, def assets.TokenDef) *donburi.Entry {
	token := archetypes.Token.Spawn(ecs)

	obj := resolv.NewObject(def.X, def.Y, cfg.Token.Size, cfg.Token.Size)
	obj.AddTags(tags.ResolvToken)
	obj.Data = token
	space.Add(obj)
	components.Object.SetValue(token, components.ObjectData{Object: obj})

	components.Token.SetValue(token, components.TokenData{Kind: def.Kind})

	return token
}

func CreatePowerup(ecs *ecs.ECS, space *resolv.Space, def assets.PowerupDef) *donburi.Entry {
	powerup := archetypes.Powerup.Spawn(ecs)

	obj := resolv.NewObject(def.X, def.Y, cfg.Powerup.Size, cfg.Powerup.Size)
	obj.AddTags(tags.ResolvPowerup)
	obj.Data = powerup
	space.Add(obj)
	components.Object.SetValue(powerup, components.ObjectData{Object: obj})

	components.Powerup.SetValue(powerup, components.PowerupData{Kind: def.Kind})

	return powerup
}
