package systems

import (
	"github.com/automoto/isodroid/components"
	cfg "github.com/automoto/isodroid/config"
	"github.com/automoto/isodroid/shared/depthsort"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	depthThrottle = &depthsort.Throttle{}
	depthNodes    []depthsort.Drawable
)

// UpdateDepth re-sorts the isometric draw order every cfg.Depth.SortEvery
// frames.
func UpdateDepth(ecs *ecs.ECS) {
	depthThrottle.Every = cfg.Depth.SortEvery
	if !depthThrottle.Tick() {
		return
	}
	SortDepth(ecs)
}

// SortDepth assigns draw orders to every wall and agent now. Ground tiles
// are a separate layer and keep order zero.
func SortDepth(ecs *ecs.ECS) {
	depthNodes = depthNodes[:0]
	components.Depth.Each(ecs.World, func(e *donburi.Entry) {
		if components.Depth.Get(e).Role == components.RoleGround {
			return
		}
		depthNodes = append(depthNodes, components.NewIsoNode(e))
	})
	depthsort.Sort(depthNodes)
}
