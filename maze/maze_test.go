package maze_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/maze"
)

// plainKinds returns an h×w matrix filled with maze.Plain.
func plainKinds(h, w int) [][]maze.CellKind {
	out := make([][]maze.CellKind, h)
	for r := range out {
		out[r] = make([]maze.CellKind, w)
		for c := range out[r] {
			out[r][c] = maze.Plain
		}
	}
	return out
}

// TestNew_InvalidShapes ensures empty and jagged grids are rejected.
func TestNew_InvalidShapes(t *testing.T) {
	_, err := maze.New(nil, nil)
	assert.ErrorIs(t, err, maze.ErrEmptyGrid)

	_, err = maze.FromKinds([][]maze.CellKind{{}}, nil)
	assert.ErrorIs(t, err, maze.ErrEmptyGrid)

	_, err = maze.FromKinds([][]maze.CellKind{{maze.Plain, maze.Plain}, {maze.Plain}}, nil)
	assert.ErrorIs(t, err, maze.ErrNonRectangular)
}

// TestNew_InvalidCells covers wall cells and misplaced coordinates.
func TestNew_InvalidCells(t *testing.T) {
	_, err := maze.FromKinds([][]maze.CellKind{{maze.Plain, maze.Wall}}, nil)
	assert.ErrorIs(t, err, maze.ErrWallCell)

	cells := [][]maze.Cell{{{Coord: maze.At(0, 1), Kind: maze.Plain}}}
	_, err = maze.New(cells, nil)
	assert.ErrorIs(t, err, maze.ErrCellMismatch)
}

// TestNew_InvalidLinks covers self-loops, diagonals and out-of-bounds links.
func TestNew_InvalidLinks(t *testing.T) {
	cases := map[string]maze.Edge{
		"self loop":    {From: maze.At(0, 0), To: maze.At(0, 0)},
		"diagonal":     {From: maze.At(0, 0), To: maze.At(1, 1)},
		"out of range": {From: maze.At(1, 1), To: maze.At(1, 2)},
		"far apart":    {From: maze.At(0, 0), To: maze.At(0, 2)},
	}
	for name, e := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := maze.FromKinds(plainKinds(2, 2), []maze.Edge{e})
			assert.True(t, errors.Is(err, maze.ErrBadLink), "got %v", err)
		})
	}
}

// TestNew_SymmetricDeduplicated verifies links are stored both ways exactly once.
func TestNew_SymmetricDeduplicated(t *testing.T) {
	a, b, c := maze.At(0, 0), maze.At(0, 1), maze.At(1, 1)
	m, err := maze.FromKinds(plainKinds(2, 2), []maze.Edge{
		{From: a, To: b},
		{From: b, To: a},
		{From: b, To: c},
		{From: a, To: b},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, m.EdgeCount())
	assert.Equal(t, []maze.Coordinate{b}, m.Neighbors(a))
	assert.Equal(t, []maze.Coordinate{a, c}, m.Neighbors(b))
	assert.Equal(t, []maze.Coordinate{b}, m.Neighbors(c))
	assert.True(t, m.Connected(c, b))
	assert.False(t, m.Connected(a, c))
	assert.False(t, m.Connected(a, maze.At(-1, 0)))
	assert.Empty(t, m.Neighbors(maze.At(1, 0)))
}

// TestMaze_CopiesAreDefensive ensures callers cannot mutate a Maze.
func TestMaze_CopiesAreDefensive(t *testing.T) {
	kinds := plainKinds(2, 2)
	m, err := maze.FromKinds(kinds, []maze.Edge{{From: maze.At(0, 0), To: maze.At(1, 0)}})
	require.NoError(t, err)

	kinds[0][0] = maze.Lava
	assert.Equal(t, maze.Plain, m.Kind(maze.At(0, 0)), "input matrix must be copied")

	g := m.Grid()
	g[0][0].Kind = maze.Lava
	assert.Equal(t, maze.Plain, m.Cell(maze.At(0, 0)).Kind, "Grid must return a copy")

	n := m.Neighbors(maze.At(0, 0))
	n[0] = maze.At(0, 1)
	assert.Equal(t, []maze.Coordinate{maze.At(1, 0)}, m.Neighbors(maze.At(0, 0)))

	e := m.Edges()
	e[0].To = maze.At(0, 1)
	assert.Equal(t, maze.At(1, 0), m.Edges()[0].To)
}

// TestMaze_Dimensions checks derived height, width and bounds.
func TestMaze_Dimensions(t *testing.T) {
	m, err := maze.FromKinds(plainKinds(3, 4), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Height())
	assert.Equal(t, 4, m.Width())
	assert.Equal(t, 12, m.Size())
	assert.True(t, m.InBounds(maze.At(2, 3)))
	assert.False(t, m.InBounds(maze.At(3, 0)))
	assert.False(t, m.InBounds(maze.At(0, -1)))
	assert.Len(t, m.Grid(), 3)
	assert.Len(t, m.Grid()[0], 4)
}

// TestOrthogonal covers corner, edge and interior positions.
func TestOrthogonal(t *testing.T) {
	assert.Empty(t, maze.Orthogonal(maze.At(0, 0), 1, 1))
	assert.Equal(t, []maze.Coordinate{maze.At(1, 0), maze.At(0, 1)}, maze.Orthogonal(maze.At(0, 0), 3, 3))
	assert.Len(t, maze.Orthogonal(maze.At(0, 1), 3, 3), 3)
	assert.Equal(t,
		[]maze.Coordinate{maze.At(0, 1), maze.At(2, 1), maze.At(1, 2), maze.At(1, 0)},
		maze.Orthogonal(maze.At(1, 1), 3, 3))
}

// TestCoordinate covers index round trips and Manhattan distance.
func TestCoordinate(t *testing.T) {
	c := maze.At(2, 3)
	assert.Equal(t, 13, c.Index(5))
	assert.Equal(t, c, maze.FromIndex(13, 5))
	assert.Equal(t, 5, c.Manhattan(maze.At(0, 0)))
	assert.Equal(t, 0, c.Manhattan(c))
	assert.Equal(t, "(2, 3)", c.String())
	assert.Equal(t, maze.Edge{From: maze.At(0, 1), To: maze.At(0, 0)},
		maze.Edge{From: maze.At(0, 0), To: maze.At(0, 1)}.Reversed())
}

// TestCellKind covers weights, names and the random draw.
func TestCellKind(t *testing.T) {
	assert.Equal(t, -1, maze.Wall.Weight())
	assert.Equal(t, 1, maze.Plain.Weight())
	assert.Equal(t, 9, maze.Lava.Weight())
	assert.False(t, maze.Wall.Traversable())
	assert.Equal(t, "swamp", maze.Swamp.String())
	assert.Equal(t, "unknown", maze.CellKind(42).String())

	kinds := maze.Kinds()
	assert.Len(t, kinds, 9)
	assert.NotContains(t, kinds, maze.Wall)

	r := rand.New(rand.NewSource(7))
	seen := map[maze.CellKind]bool{}
	for i := 0; i < 2000; i++ {
		k := maze.RandomKind(r)
		require.True(t, k.Traversable(), "RandomKind returned %v", k)
		seen[k] = true
	}
	assert.Len(t, seen, 9, "every traversable kind should eventually be drawn")
}

// TestPath covers Steps, Cost, Contains, Valid and String.
func TestPath(t *testing.T) {
	kinds := [][]maze.CellKind{
		{maze.Plain, maze.Sand},
		{maze.Lava, maze.Gold},
	}
	m, err := maze.FromKinds(kinds, []maze.Edge{
		{From: maze.At(0, 0), To: maze.At(0, 1)},
		{From: maze.At(0, 1), To: maze.At(1, 1)},
	})
	require.NoError(t, err)

	p := maze.Path{maze.At(0, 0), maze.At(0, 1), maze.At(1, 1)}
	assert.Equal(t, 2, p.Steps())
	assert.Equal(t, maze.Sand.Weight()+maze.Gold.Weight(), p.Cost(m))
	assert.True(t, p.Contains(maze.At(0, 1)))
	assert.False(t, p.Contains(maze.At(1, 0)))
	assert.True(t, p.Valid(m))
	assert.Equal(t, "[(0, 0) (0, 1) (1, 1)]", p.String())

	assert.False(t, maze.Path{maze.At(0, 0), maze.At(1, 0)}.Valid(m))

	var empty maze.Path
	assert.Zero(t, empty.Steps())
	assert.Zero(t, empty.Cost(m))
	assert.True(t, empty.Valid(m))
}
