// SPDX-License-Identifier: MIT

package maze

import (
	"fmt"
	"slices"
)

// Maze is an immutable height×width grid of cells plus the undirected graph
// of removed walls between them.
type Maze struct {
	height int
	width  int
	cells  []Cell         // row-major
	adj    [][]Coordinate // adj[idx] lists neighbours of cell idx in link order
	edges  []Edge         // each undirected link once, first-seen orientation
}

// New validates cells and links and freezes them into a Maze.
//
// Behavior:
//  1. cells must be non-empty and rectangular; cells[r][c].Coord must be (r, c)
//     and every Kind must be traversable.
//  2. Each link must join two distinct, orthogonally adjacent, in-bounds cells.
//     It is recorded in both directions; repeated links are ignored.
//
// cells is copied, so the caller may reuse it.
// Complexity: O(H·W + L). Memory: O(H·W + L).
func New(cells [][]Cell, links []Edge) (*Maze, error) {
	h, w, err := dims(len(cells), func(r int) int { return len(cells[r]) })
	if err != nil {
		return nil, err
	}
	m := &Maze{
		height: h,
		width:  w,
		cells:  make([]Cell, 0, h*w),
		adj:    make([][]Coordinate, h*w),
	}
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			cell := cells[r][c]
			if cell.Coord != At(r, c) {
				return nil, fmt.Errorf("%w: slot %v holds %v", ErrCellMismatch, At(r, c), cell.Coord)
			}
			if !cell.Kind.Traversable() {
				return nil, fmt.Errorf("%w: %v is %s", ErrWallCell, cell.Coord, cell.Kind)
			}
			m.cells = append(m.cells, cell)
		}
	}
	for _, e := range links {
		if err := m.link(e); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// FromKinds builds a Maze from a rectangular matrix of kinds, deriving each
// cell's coordinate from its position.
func FromKinds(kinds [][]CellKind, links []Edge) (*Maze, error) {
	cells := make([][]Cell, len(kinds))
	for r, row := range kinds {
		cells[r] = make([]Cell, len(row))
		for c, k := range row {
			cells[r][c] = Cell{Coord: At(r, c), Kind: k}
		}
	}

	return New(cells, links)
}

// dims checks the grid shape and returns its height and width.
func dims(rows int, rowLen func(int) int) (int, int, error) {
	if rows == 0 || rowLen(0) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	w := rowLen(0)
	for r := 1; r < rows; r++ {
		if rowLen(r) != w {
			return 0, 0, ErrNonRectangular
		}
	}

	return rows, w, nil
}

// link records e in both directions unless it is already present.
func (m *Maze) link(e Edge) error {
	if !m.InBounds(e.From) || !m.InBounds(e.To) || e.From.Manhattan(e.To) != 1 {
		return fmt.Errorf("%w: %v-%v", ErrBadLink, e.From, e.To)
	}
	if m.Connected(e.From, e.To) {
		return nil
	}
	from, to := e.From.Index(m.width), e.To.Index(m.width)
	m.adj[from] = append(m.adj[from], e.To)
	m.adj[to] = append(m.adj[to], e.From)
	m.edges = append(m.edges, e)

	return nil
}

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Size returns Height()*Width().
func (m *Maze) Size() int { return m.height * m.width }

// InBounds reports whether c lies inside the grid.
func (m *Maze) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < m.height && c.Col >= 0 && c.Col < m.width
}

// Cell returns the cell at c. c must be in bounds.
func (m *Maze) Cell(c Coordinate) Cell { return m.cells[c.Index(m.width)] }

// Kind returns the terrain at c. c must be in bounds.
func (m *Maze) Kind(c Coordinate) CellKind { return m.cells[c.Index(m.width)].Kind }

// Grid returns a fresh height×width copy of the cells.
func (m *Maze) Grid() [][]Cell {
	out := make([][]Cell, m.height)
	for r := range out {
		out[r] = slices.Clone(m.cells[r*m.width : (r+1)*m.width])
	}

	return out
}

// Neighbors returns a copy of the cells reachable from c through a removed
// wall, in the order the walls were removed. c must be in bounds.
func (m *Maze) Neighbors(c Coordinate) []Coordinate {
	return slices.Clone(m.adj[c.Index(m.width)])
}

// Degree returns the number of removed walls around c.
func (m *Maze) Degree(c Coordinate) int { return len(m.adj[c.Index(m.width)]) }

// Connected reports whether the wall between a and b has been removed.
// Out-of-bounds coordinates are never connected.
func (m *Maze) Connected(a, b Coordinate) bool {
	if !m.InBounds(a) || !m.InBounds(b) {
		return false
	}
	return slices.Contains(m.adj[a.Index(m.width)], b)
}

// Edges returns every undirected link once, in insertion order.
func (m *Maze) Edges() []Edge { return slices.Clone(m.edges) }

// EdgeCount returns the number of undirected links.
func (m *Maze) EdgeCount() int { return len(m.edges) }
