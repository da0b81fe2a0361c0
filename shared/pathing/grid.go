// Package pathing derives the traversability mask of a level and defines the
// path provider contract the navigation code consumes.
package pathing

import (
	"github.com/automoto/isodroid/shared/gamemath"
	"github.com/automoto/isodroid/shared/leveldata"
)

// Grid is the traversability mask of a level, true = blocked. It is read-only
// once built; a changed level gets a new Grid.
type Grid struct {
	width, height int
	blocked       []bool
}

// NewGrid classifies every cell of level: walls are blocked, everything else
// (ground, and the droid's own tile) is open.
func NewGrid(level *leveldata.Level) *Grid {
	g := &Grid{
		width:   level.Width,
		height:  level.Height,
		blocked: make([]bool, level.Width*level.Height),
	}
	level.Each(func(c gamemath.Cell, t leveldata.Tile) {
		if g.InBounds(c) {
			g.blocked[g.index(c)] = isBlocking(t.Kind)
		}
	})
	return g
}

// NewGridFromMask builds a grid from rows of blocked flags.
func NewGridFromMask(rows [][]bool) *Grid {
	g := &Grid{height: len(rows)}
	if g.height > 0 {
		g.width = len(rows[0])
	}
	g.blocked = make([]bool, g.width*g.height)
	for r, row := range rows {
		for c := 0; c < g.width && c < len(row); c++ {
			g.blocked[r*g.width+c] = row[c]
		}
	}
	return g
}

func isBlocking(k leveldata.Kind) bool {
	return k == leveldata.KindWall
}

// Width is the number of columns.
func (g *Grid) Width() int { return g.width }

// Height is the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies in [0, width) x [0, height).
func (g *Grid) InBounds(c gamemath.Cell) bool {
	return c.Col >= 0 && c.Col < g.width && c.Row >= 0 && c.Row < g.height
}

// IsTraversable is false for blocked cells and for cells outside the grid.
func (g *Grid) IsTraversable(c gamemath.Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	return !g.blocked[g.index(c)]
}

func (g *Grid) index(c gamemath.Cell) int {
	return c.Row*g.width + c.Col
}
