package depthsort

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/isodroid/shared/gamemath"
)

type fakeNode struct {
	name string
	pos  math.Vec2 // 2D space
	z    int
}

func (n *fakeNode) IsoPosition() math.Vec2 { return gamemath.TwoDToIso(n.pos) }
func (n *fakeNode) SetDrawOrder(z int)     { n.z = z }

func drawables(nodes ...*fakeNode) []Drawable {
	out := make([]Drawable, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out
}

func TestKeyIsXMinusYIn2D(t *testing.T) {
	p := math.Vec2{X: 64, Y: -96}
	assert.InDelta(t, 160.0, Key(gamemath.TwoDToIso(p)), 1e-9)
}

func TestSortOrdersBackToFront(t *testing.T) {
	far := &fakeNode{name: "far", pos: math.Vec2{X: 0, Y: 0}}
	mid := &fakeNode{name: "mid", pos: math.Vec2{X: 32, Y: 0}}
	near := &fakeNode{name: "near", pos: math.Vec2{X: 32, Y: -64}}

	Sort(drawables(near, far, mid))

	assert.Equal(t, 0, far.z)
	assert.Equal(t, 1, mid.z)
	assert.Equal(t, 2, near.z)
}

func TestSortIsStableForEqualKeys(t *testing.T) {
	// both on the same anti-diagonal: x - y == 32
	a := &fakeNode{name: "a", pos: math.Vec2{X: 32, Y: 0}}
	b := &fakeNode{name: "b", pos: math.Vec2{X: 0, Y: -32}}
	c := &fakeNode{name: "c", pos: math.Vec2{X: 0, Y: 0}}

	Sort(drawables(a, b, c))
	assert.Equal(t, 0, c.z)
	assert.Equal(t, 1, a.z)
	assert.Equal(t, 2, b.z)

	Sort(drawables(b, a, c))
	assert.Equal(t, 1, b.z)
	assert.Equal(t, 2, a.z)
}

func TestSortIsIdempotent(t *testing.T) {
	nodes := []*fakeNode{
		{pos: math.Vec2{X: 96, Y: -32}},
		{pos: math.Vec2{X: 0, Y: -288}},
		{pos: math.Vec2{X: 64, Y: -64}},
		{pos: math.Vec2{X: 256, Y: 0}},
		{pos: math.Vec2{X: 75.5, Y: -12.25}},
	}
	ds := drawables(nodes...)

	Sort(ds)
	first := make([]int, len(nodes))
	for i, n := range nodes {
		first[i] = n.z
	}

	Sort(ds)
	for i, n := range nodes {
		assert.Equal(t, first[i], n.z)
	}

	// indices are a permutation that follows the keys
	for i := range nodes {
		for j := range nodes {
			if Key(nodes[i].IsoPosition()) < Key(nodes[j].IsoPosition()) {
				assert.Less(t, nodes[i].z, nodes[j].z)
			}
		}
	}
}

func TestSortEmpty(t *testing.T) {
	assert.NotPanics(t, func() { Sort(nil) })
}

func TestThrottleFiresEveryNth(t *testing.T) {
	th := &Throttle{Every: 6}
	var fired []int
	for frame := 1; frame <= 18; frame++ {
		if th.Tick() {
			fired = append(fired, frame)
		}
	}
	assert.Equal(t, []int{6, 12, 18}, fired)
}

func TestThrottleEveryFrame(t *testing.T) {
	th := &Throttle{Every: 1}
	for i := 0; i < 3; i++ {
		assert.True(t, th.Tick())
	}
	zero := &Throttle{}
	assert.True(t, zero.Tick())
}
