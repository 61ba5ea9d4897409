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

func CreatePlatform(ecs *ecs.ECS, space *resolv.Space, def assets.PlatformDef) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(def.X, def.Y, def.W, def.H)
	obj.AddTags(tags.ResolvSolid)
	obj.Data = platform
	space.Add(obj)
	components.Object.SetValue(platform, components.ObjectData{Object: obj})

	data := components.PlatformData{Kind: def.Kind}
	if def.Kind == cfg.PlatformMoving {
		data.Speed = def.Speed
		data.Range = def.Range
		data.Direction = cfg.DirectionRight
		data.OriginX = def.X
	}
	components.Platform.SetValue(platform, data)

	return platform
}
