package systems

import (
	"github.com/automoto/isodroid/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects refreshes every 2D body after motion has moved it.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
