package pathing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/isodroid/shared/gamemath"
	"github.com/automoto/isodroid/shared/leveldata"
)

// parseMask turns rows of '#' (blocked) and '.' (open) into a Grid.
func parseMask(rows ...string) *Grid {
	mask := make([][]bool, len(rows))
	for r, row := range rows {
		mask[r] = make([]bool, len(row))
		for c, ch := range row {
			mask[r][c] = ch == '#'
		}
	}
	return NewGridFromMask(mask)
}

func cell(col, row int) gamemath.Cell {
	return gamemath.Cell{Col: col, Row: row}
}

func TestNewGridBlocksOnlyWalls(t *testing.T) {
	level := &leveldata.Level{
		Width:  3,
		Height: 1,
		Tiles: [][]leveldata.Tile{{
			{Kind: leveldata.KindWall},
			{Kind: leveldata.KindGround},
			{Kind: leveldata.KindDroid},
		}},
	}

	g := NewGrid(level)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 1, g.Height())
	assert.False(t, g.IsTraversable(cell(0, 0)))
	assert.True(t, g.IsTraversable(cell(1, 0)))
	assert.True(t, g.IsTraversable(cell(2, 0)), "the droid's tile is walkable")
}

func TestIsTraversableOutOfBounds(t *testing.T) {
	g := parseMask("..", "..")
	for _, c := range []gamemath.Cell{cell(-1, 0), cell(0, -1), cell(2, 0), cell(0, 2)} {
		assert.False(t, g.InBounds(c), "%v", c)
		assert.False(t, g.IsTraversable(c), "%v", c)
	}
	assert.True(t, g.IsTraversable(cell(1, 1)))
}

func TestFindPathFromShortCircuits(t *testing.T) {
	g := parseMask(
		"...",
		".#.",
	)
	calls := 0
	spy := FinderFunc(func(g *Grid, start, goal gamemath.Cell) ([]gamemath.Cell, bool) {
		calls++
		return []gamemath.Cell{start, goal}, true
	})

	_, ok := FindPathFrom(g, spy, cell(0, 0), cell(1, 1))
	assert.False(t, ok, "blocked goal")
	_, ok = FindPathFrom(g, spy, cell(0, 0), cell(5, 0))
	assert.False(t, ok, "out of bounds goal")
	_, ok = FindPathFrom(g, spy, cell(0, 0), cell(-1, 0))
	assert.False(t, ok, "negative goal")
	assert.Equal(t, 0, calls)

	path, ok := FindPathFrom(g, spy, cell(0, 0), cell(2, 1))
	assert.True(t, ok)
	assert.Equal(t, []gamemath.Cell{cell(0, 0), cell(2, 1)}, path)
	assert.Equal(t, 1, calls)
}

func assertValidPath(t *testing.T, g *Grid, path []gamemath.Cell, start, goal gamemath.Cell) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, start, path[0])
	assert.Equal(t, goal, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		dc := path[i].Col - path[i-1].Col
		dr := path[i].Row - path[i-1].Row
		assert.True(t, dc >= -1 && dc <= 1 && dr >= -1 && dr <= 1 && (dc != 0 || dr != 0),
			"step %d is not adjacent: %v -> %v", i, path[i-1], path[i])
		assert.True(t, g.IsTraversable(path[i]), "step %d enters blocked %v", i, path[i])
	}
}

func TestAStarStraightLine(t *testing.T) {
	g := parseMask(".....")
	path, ok := AStar{}.FindPath(g, cell(0, 0), cell(4, 0))
	require.True(t, ok)
	assert.Equal(t, []gamemath.Cell{cell(0, 0), cell(1, 0), cell(2, 0), cell(3, 0), cell(4, 0)}, path)
}

func TestAStarDiagonal(t *testing.T) {
	g := parseMask(
		"...",
		"...",
		"...",
	)
	path, ok := AStar{}.FindPath(g, cell(0, 0), cell(2, 2))
	require.True(t, ok)
	assert.Equal(t, []gamemath.Cell{cell(0, 0), cell(1, 1), cell(2, 2)}, path)
}

func TestAStarRoutesAroundWalls(t *testing.T) {
	g := parseMask(
		".....",
		"####.",
		".....",
	)
	start, goal := cell(0, 0), cell(0, 2)
	path, ok := AStar{}.FindPath(g, start, goal)
	require.True(t, ok)
	assertValidPath(t, g, path, start, goal)
	assert.Contains(t, path, cell(4, 1), "the only gap")
}

func TestAStarDoesNotCutCorners(t *testing.T) {
	g := parseMask(
		".#",
		"..",
	)
	path, ok := AStar{}.FindPath(g, cell(0, 0), cell(1, 1))
	require.True(t, ok)
	assert.Equal(t, []gamemath.Cell{cell(0, 0), cell(0, 1), cell(1, 1)}, path)
}

func TestAStarUnreachable(t *testing.T) {
	g := parseMask(
		"..#..",
		"..#..",
	)
	_, ok := AStar{}.FindPath(g, cell(0, 0), cell(4, 1))
	assert.False(t, ok)
}

func TestAStarStartIsGoal(t *testing.T) {
	g := parseMask("..")
	path, ok := AStar{}.FindPath(g, cell(1, 0), cell(1, 0))
	require.True(t, ok)
	assert.Equal(t, []gamemath.Cell{cell(1, 0)}, path)
}

func TestAStarOnBuiltInRoomShape(t *testing.T) {
	g := parseMask(
		"#########",
		"#.......#",
		"#.......#",
		"#....####",
		"#..#.....",
		"#..#.....",
		"#..####..",
		"#.....#..",
		"#.....#..",
		"####.....",
	)
	start, goal := cell(2, 2), cell(8, 4)
	path, ok := FindPathFrom(g, AStar{}, start, goal)
	require.True(t, ok)
	assertValidPath(t, g, path, start, goal)
}
