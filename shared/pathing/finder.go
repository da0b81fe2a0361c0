package pathing

import "github.com/automoto/isodroid/shared/gamemath"

// Finder produces a path from start to goal, both inclusive, or false when
// goal cannot be reached. Implementations may return any of several equally
// short paths.
type Finder interface {
	FindPath(g *Grid, start, goal gamemath.Cell) ([]gamemath.Cell, bool)
}

// FinderFunc adapts a plain function to Finder.
type FinderFunc func(g *Grid, start, goal gamemath.Cell) ([]gamemath.Cell, bool)

func (f FinderFunc) FindPath(g *Grid, start, goal gamemath.Cell) ([]gamemath.Cell, bool) {
	return f(g, start, goal)
}

// FindPathFrom checks the goal before searching: an out-of-bounds or blocked
// goal is "no path" and the finder is never called.
func FindPathFrom(g *Grid, f Finder, start, goal gamemath.Cell) ([]gamemath.Cell, bool) {
	if !g.InBounds(goal) || !g.IsTraversable(goal) {
		return nil, false
	}
	return f.FindPath(g, start, goal)
}
