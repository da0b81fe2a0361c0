package pathing

import (
	"math"

	astar "github.com/beefsack/go-astar"

	"github.com/automoto/isodroid/shared/gamemath"
)

// AStar is the default Finder, backed by go-astar. Movement is 8-directional;
// a diagonal step is only allowed when both orthogonal cells it passes
// between are open, so the hero never clips a wall corner.
type AStar struct{}

// FindPath implements Finder.
func (AStar) FindPath(g *Grid, start, goal gamemath.Cell) ([]gamemath.Cell, bool) {
	if !g.InBounds(start) || !g.InBounds(goal) {
		return nil, false
	}
	if start == goal {
		return []gamemath.Cell{start}, true
	}

	graph := newNavGraph(g)
	path, _, found := astar.Path(graph.node(start), graph.node(goal))
	if !found {
		return nil, false
	}

	cells := make([]gamemath.Cell, len(path))
	for i, p := range path {
		cells[i] = p.(*navNode).cell
	}
	// go-astar walks parents back from the goal
	if cells[0] != start {
		for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
			cells[i], cells[j] = cells[j], cells[i]
		}
	}
	return cells, true
}

// navGraph lazily materialises one node per cell so go-astar can compare
// nodes by pointer identity.
type navGraph struct {
	grid  *Grid
	nodes map[gamemath.Cell]*navNode
}

// navNode implements astar.Pather.
type navNode struct {
	cell  gamemath.Cell
	graph *navGraph
}

func newNavGraph(g *Grid) *navGraph {
	return &navGraph{grid: g, nodes: make(map[gamemath.Cell]*navNode)}
}

func (ng *navGraph) node(c gamemath.Cell) *navNode {
	if n, ok := ng.nodes[c]; ok {
		return n
	}
	n := &navNode{cell: c, graph: ng}
	ng.nodes[c] = n
	return n
}

var neighbourOffsets = []struct{ dc, dr int }{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1}, // Cardinal
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1}, // Diagonal
}

// PathNeighbors returns adjacent open cells (implements astar.Pather)
func (n *navNode) PathNeighbors() []astar.Pather {
	g := n.graph.grid
	neighbors := make([]astar.Pather, 0, len(neighbourOffsets))

	for _, d := range neighbourOffsets {
		next := n.cell.Add(d.dc, d.dr)
		if !g.IsTraversable(next) {
			continue
		}
		if d.dc != 0 && d.dr != 0 {
			if !g.IsTraversable(n.cell.Add(d.dc, 0)) || !g.IsTraversable(n.cell.Add(0, d.dr)) {
				continue
			}
		}
		neighbors = append(neighbors, n.graph.node(next))
	}

	return neighbors
}

// PathNeighborCost is 1 for orthogonal steps and sqrt(2) for diagonal ones.
func (n *navNode) PathNeighborCost(to astar.Pather) float64 {
	return cellDistance(n.cell, to.(*navNode).cell)
}

// PathEstimatedCost is the euclidean heuristic.
func (n *navNode) PathEstimatedCost(to astar.Pather) float64 {
	return cellDistance(n.cell, to.(*navNode).cell)
}

func cellDistance(a, b gamemath.Cell) float64 {
	dx := float64(b.Col - a.Col)
	dy := float64(b.Row - a.Row)
	return math.Sqrt(dx*dx + dy*dy)
}
