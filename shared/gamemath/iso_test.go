package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

const tile = 32.0

func TestTwoDToIsoKnownPoints(t *testing.T) {
	tests := []struct {
		name string
		in   math.Vec2
		want math.Vec2
	}{
		{"origin", math.Vec2{}, math.Vec2{}},
		{"one tile east", math.Vec2{X: 32}, math.Vec2{X: 32, Y: -16}},
		{"one tile up", math.Vec2{Y: 32}, math.Vec2{X: 32, Y: 16}},
		{"one row down", math.Vec2{Y: -32}, math.Vec2{X: -32, Y: -16}},
		{"diagonal", math.Vec2{X: 32, Y: 32}, math.Vec2{X: 64, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TwoDToIso(tt.in)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestIsoRoundTrip(t *testing.T) {
	points := []math.Vec2{
		{X: 0, Y: 0},
		{X: 1, Y: -1},
		{X: 123.456, Y: -987.25},
		{X: -64, Y: 32},
		{X: 1e6, Y: -3.5e5},
		{X: -0.001, Y: 0.002},
	}

	for _, p := range points {
		back := IsoToTwoD(TwoDToIso(p))
		assert.InDelta(t, p.X, back.X, 1e-6, "2D->iso->2D x for %v", p)
		assert.InDelta(t, p.Y, back.Y, 1e-6, "2D->iso->2D y for %v", p)

		fwd := TwoDToIso(IsoToTwoD(p))
		assert.InDelta(t, p.X, fwd.X, 1e-6, "iso->2D->iso x for %v", p)
		assert.InDelta(t, p.Y, fwd.Y, 1e-6, "iso->2D->iso y for %v", p)
	}
}

func TestTwoDToTileIndexFloorsTowardNegativeInfinity(t *testing.T) {
	ix, iy := TwoDToTileIndex(math.Vec2{X: -1, Y: -1}, tile, tile)
	assert.Equal(t, -1, ix)
	assert.Equal(t, -1, iy)

	ix, iy = TwoDToTileIndex(math.Vec2{X: 31.9, Y: 0}, tile, tile)
	assert.Equal(t, 0, ix)
	assert.Equal(t, 0, iy)

	ix, iy = TwoDToTileIndex(math.Vec2{X: 64, Y: -80}, tile, tile)
	assert.Equal(t, 2, ix)
	assert.Equal(t, -3, iy)
}

func TestGridIndexRoundTrip(t *testing.T) {
	for col := -3; col < 12; col++ {
		for row := -3; row < 12; row++ {
			c := Cell{Col: col, Row: row}
			p := GridIndexToTwoD(c, tile, tile)
			assert.Equal(t, c, TwoDToGridIndex(p, tile, tile))
		}
	}
}

func TestGridIndexRowsGrowDownward(t *testing.T) {
	p := GridIndexToTwoD(Cell{Col: 2, Row: 3}, tile, tile)
	assert.Equal(t, math.Vec2{X: 64, Y: -96}, p)

	// a point inside the tile, above its origin, is still row 3
	assert.Equal(t, Cell{Col: 2, Row: 3}, TwoDToGridIndex(math.Vec2{X: 70, Y: -80}, tile, tile))
}
