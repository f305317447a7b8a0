// SPDX-License-Identifier: MIT

package generator

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/katalvlaran/labyrinth/maze"
)

// buildState is the mutable grid and adjacency a single Generate call fills
// in. It never escapes the call; freeze hands an immutable copy to the caller.
type buildState struct {
	height int
	width  int
	rng    *rand.Rand
	grid   [][]*maze.Cell // nil until ensureCell
	adj    map[maze.Coordinate][]maze.Coordinate
	links  []maze.Edge // removed walls in removal order
}

func newBuildState(height, width int, rng *rand.Rand) *buildState {
	grid := make([][]*maze.Cell, height)
	for r := range grid {
		grid[r] = make([]*maze.Cell, width)
	}

	return &buildState{
		height: height,
		width:  width,
		rng:    rng,
		grid:   grid,
		adj:    make(map[maze.Coordinate][]maze.Coordinate, height*width),
	}
}

// index is the DSU element of c.
func (s *buildState) index(c maze.Coordinate) int { return c.Index(s.width) }

// ensureCell assigns a random traversable kind to c on first reference.
func (s *buildState) ensureCell(c maze.Coordinate) {
	if s.grid[c.Row][c.Col] != nil {
		return
	}
	s.grid[c.Row][c.Col] = &maze.Cell{Coord: c, Kind: maze.RandomKind(s.rng)}
}

// fill touches every cell in row-major order.
func (s *buildState) fill() {
	for r := 0; r < s.height; r++ {
		for c := 0; c < s.width; c++ {
			s.ensureCell(maze.At(r, c))
		}
	}
}

// connect removes the wall between a and b, recording each direction once.
func (s *buildState) connect(a, b maze.Coordinate) {
	s.ensureCell(a)
	s.ensureCell(b)
	if slices.Contains(s.adj[a], b) {
		return
	}
	s.adj[a] = append(s.adj[a], b)
	s.adj[b] = append(s.adj[b], a)
	s.links = append(s.links, maze.Edge{From: a, To: b})
}

// neighborsInBounds lists the orthogonal neighbours of c inside the grid.
func (s *buildState) neighborsInBounds(c maze.Coordinate) []maze.Coordinate {
	return maze.Orthogonal(c, s.height, s.width)
}

// nearWalls appends a wall from c to each in-bounds neighbour.
func (s *buildState) nearWalls(dst []maze.Edge, c maze.Coordinate) []maze.Edge {
	for _, n := range s.neighborsInBounds(c) {
		dst = append(dst, maze.Edge{From: c, To: n})
	}
	return dst
}

// interiorWalls lists every wall between adjacent cells exactly once per
// unordered pair: the right and lower wall of each cell.
func (s *buildState) interiorWalls() []maze.Edge {
	walls := make([]maze.Edge, 0, 2*s.height*s.width)
	for r := 0; r < s.height; r++ {
		for c := 0; c < s.width; c++ {
			from := maze.At(r, c)
			if c+1 < s.width {
				walls = append(walls, maze.Edge{From: from, To: maze.At(r, c+1)})
			}
			if r+1 < s.height {
				walls = append(walls, maze.Edge{From: from, To: maze.At(r+1, c)})
			}
		}
	}

	return walls
}

// freeze copies the state into an immutable Maze.
func (s *buildState) freeze() *maze.Maze {
	s.fill()
	cells := make([][]maze.Cell, s.height)
	for r := range cells {
		cells[r] = make([]maze.Cell, s.width)
		for c, cell := range s.grid[r] {
			cells[r][c] = *cell
		}
	}
	m, err := maze.New(cells, s.links)
	if err != nil {
		// connect only links in-bounds neighbours and ensureCell only assigns
		// traversable kinds, so New cannot reject the state.
		panic(fmt.Sprintf("generator: corrupt build state: %v", err))
	}

	return m
}

// drawRemove removes and returns a uniformly random element of *pool.
// Order of the remaining elements is not preserved.
func drawRemove(r *rand.Rand, pool *[]maze.Edge) maze.Edge {
	p := *pool
	i := r.Intn(len(p))
	e := p[i]
	last := len(p) - 1
	p[i] = p[last]
	*pool = p[:last]

	return e
}
