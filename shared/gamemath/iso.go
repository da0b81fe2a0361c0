// Package gamemath holds the pure coordinate math shared by the simulation and
// the renderer. Three spaces are involved: grid cells (column, row), the
// orthogonal 2D pixel space where the hero's position is authoritative, and the
// isometric pixel space used only for display and touch input.
//
// 2D space has Y pointing up, so row r of the level sits at y = -r*tileHeight.
package gamemath

import (
	stdmath "math"

	"github.com/yohamta/donburi/features/math"
)

// Cell addresses a tile of the level grid. Rows grow downward.
type Cell struct {
	Col int
	Row int
}

// Add returns the cell offset by (dc, dr).
func (c Cell) Add(dc, dr int) Cell {
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}

// TwoDToIso projects a 2D-space point into isometric space.
func TwoDToIso(p math.Vec2) math.Vec2 {
	// invert y pre conversion
	x, y := p.X, -p.Y

	x, y = x-y, (x+y)/2

	// invert y post conversion
	return math.Vec2{X: x, Y: -y}
}

// IsoToTwoD is the exact inverse of TwoDToIso.
func IsoToTwoD(p math.Vec2) math.Vec2 {
	x, y := p.X, -p.Y

	x, y = (2*y+x)/2, (2*y-x)/2

	return math.Vec2{X: x, Y: -y}
}

// TwoDToTileIndex divides by the tile size and floors toward negative
// infinity, so points left of or below the origin land in the right tile.
func TwoDToTileIndex(p math.Vec2, tileWidth, tileHeight float64) (ix, iy int) {
	return int(stdmath.Floor(p.X / tileWidth)), int(stdmath.Floor(p.Y / tileHeight))
}

// TileIndexToTwoD returns the 2D origin of a tile index.
func TileIndexToTwoD(ix, iy int, tileWidth, tileHeight float64) math.Vec2 {
	return math.Vec2{X: float64(ix) * tileWidth, Y: float64(iy) * tileHeight}
}

// TwoDToGridIndex returns the cell containing p.
func TwoDToGridIndex(p math.Vec2, tileWidth, tileHeight float64) Cell {
	ix, iy := TwoDToTileIndex(p, tileWidth, tileHeight)
	return Cell{Col: ix, Row: -iy}
}

// GridIndexToTwoD returns the 2D origin of a cell.
func GridIndexToTwoD(c Cell, tileWidth, tileHeight float64) math.Vec2 {
	return TileIndexToTwoD(c.Col, -c.Row, tileWidth, tileHeight)
}

// Distance is the euclidean distance between two points.
func Distance(a, b math.Vec2) float64 {
	return stdmath.Hypot(a.X-b.X, a.Y-b.Y)
}
