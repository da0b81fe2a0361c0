// Package depthsort orders isometric scene objects back to front without a
// depth buffer. The projection flattens depth, so each object's position is
// unprojected to 2D space and ordered there.
package depthsort

import (
	"sort"

	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/isodroid/shared/gamemath"
)

// Drawable is the view the sorter needs of an isometric scene object.
type Drawable interface {
	IsoPosition() math.Vec2
	SetDrawOrder(z int)
}

// Key is the depth of an isometric position: larger keys are nearer the
// viewer and draw later.
func Key(iso math.Vec2) float64 {
	p := gamemath.IsoToTwoD(iso)
	return p.X - p.Y
}

// Sort assigns draw orders 0..n-1 back to front. The sort is stable: objects
// with equal keys keep their relative input order, so sorting twice is a no-op.
func Sort(nodes []Drawable) {
	keys := make([]float64, len(nodes))
	order := make([]int, len(nodes))
	for i, n := range nodes {
		keys[i] = Key(n.IsoPosition())
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		return keys[order[a]] < keys[order[b]]
	})

	for z, i := range order {
		nodes[i].SetDrawOrder(z)
	}
}

// Throttle fires on every Every-th tick.
type Throttle struct {
	Every int
	count int
}

// Tick counts one frame and reports whether this frame is a sort frame.
func (t *Throttle) Tick() bool {
	every := t.Every
	if every <= 1 {
		return true
	}
	t.count++
	if t.count >= every {
		t.count = 0
		return true
	}
	return false
}
