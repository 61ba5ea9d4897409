package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/pixeldrift/cartdash/components"
)

// UpdateObjects syncs every entity's collision-space cells with its
// position. Runs last so next tick's space queries see final positions.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
