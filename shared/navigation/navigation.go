// Package navigation turns a tap in isometric space into a path and a motion
// plan for the hero.
package navigation

import (
	"errors"
	stdmath "math"

	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/isodroid/shared/gamemath"
	"github.com/automoto/isodroid/shared/motion"
	"github.com/automoto/isodroid/shared/pathing"
)

var (
	// ErrGoalBlocked is returned when the tapped cell is a wall or off the grid.
	ErrGoalBlocked = errors.New("goal is blocked or off the grid")
	// ErrUnreachable is returned when no path joins the start and goal cells.
	ErrUnreachable = errors.New("goal is unreachable")
	// ErrNoMove is returned when the goal is the cell the agent stands on.
	ErrNoMove = errors.New("already at goal")
)

// Navigator plans hero movement on one level's grid.
type Navigator struct {
	Grid   *pathing.Grid
	Finder pathing.Finder
	Params motion.Params
}

// New returns a Navigator using the A* finder.
func New(grid *pathing.Grid, params motion.Params) *Navigator {
	return &Navigator{Grid: grid, Finder: pathing.AStar{}, Params: params}
}

// Plan is an accepted navigation request.
type Plan struct {
	Path     []gamemath.Cell
	Segments []motion.Segment
}

// Goal is the last cell of the path.
func (p Plan) Goal() gamemath.Cell {
	return p.Path[len(p.Path)-1]
}

// GoalFromIso maps a tap in isometric space to the cell under it. The tap is
// taken to the 2D point and shifted by half a tile so the whole diamond of a
// tile selects that tile.
func (n *Navigator) GoalFromIso(iso math.Vec2) gamemath.Cell {
	p := gamemath.IsoToTwoD(iso)
	p.X += n.Params.TileWidth / 2
	p.Y -= n.Params.TileHeight / 2
	return gamemath.TwoDToGridIndex(p, n.Params.TileWidth, n.Params.TileHeight)
}

// CellCentreIso is the isometric point at the middle of c's diamond, the
// point GoalFromIso maps back to c with the most margin.
func (n *Navigator) CellCentreIso(c gamemath.Cell) math.Vec2 {
	p := gamemath.GridIndexToTwoD(c, n.Params.TileWidth, n.Params.TileHeight)
	p.Y += n.Params.TileHeight
	return gamemath.TwoDToIso(p)
}

// Plan finds a path from the agent's 2D position to the tapped cell and builds
// its segments. Rejected requests leave the caller's current motion alone.
func (n *Navigator) Plan(agent, iso math.Vec2) (Plan, error) {
	start := gamemath.TwoDToGridIndex(agent, n.Params.TileWidth, n.Params.TileHeight)
	return n.PlanTo(agent, start, n.GoalFromIso(iso))
}

// PlanTo is Plan with explicit start and goal cells.
func (n *Navigator) PlanTo(agent math.Vec2, start, goal gamemath.Cell) (Plan, error) {
	path, ok := pathing.FindPathFrom(n.Grid, n.Finder, start, goal)
	if !ok {
		if !n.Grid.IsTraversable(goal) {
			return Plan{}, ErrGoalBlocked
		}
		return Plan{}, ErrUnreachable
	}
	if len(path) < 2 {
		return Plan{}, ErrNoMove
	}

	return Plan{
		Path:     path,
		Segments: motion.Build(path, agent, n.Params),
	}, nil
}

// Highlight marks one cell of a planned path.
type Highlight struct {
	Cell  gamemath.Cell
	Index int
	Alpha float64
}

const (
	highlightBase = 0.25
	highlightRise = 0.25
)

// Highlights returns one marker per path cell. Alpha rises from 0.25 at the
// start toward 0.5 at the destination.
func Highlights(path []gamemath.Cell) []Highlight {
	n := len(path)
	out := make([]Highlight, n)
	for i, c := range path {
		out[i] = Highlight{
			Cell:  c,
			Index: i,
			Alpha: highlightBase + float64(i)/float64(n)*highlightRise,
		}
	}
	return out
}

// SnapToCell returns the 2D origin of the cell containing p.
func SnapToCell(p math.Vec2, tileWidth, tileHeight float64) math.Vec2 {
	c := gamemath.TwoDToGridIndex(p, tileWidth, tileHeight)
	return gamemath.GridIndexToTwoD(c, tileWidth, tileHeight)
}

// OnGrid reports whether p sits exactly on a cell origin.
func OnGrid(p math.Vec2, tileWidth, tileHeight float64) bool {
	s := SnapToCell(p, tileWidth, tileHeight)
	return stdmath.Abs(s.X-p.X) < 1e-9 && stdmath.Abs(s.Y-p.Y) < 1e-9
}
