// SPDX-License-Identifier: MIT

package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by New and FromKinds.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")

	// ErrCellMismatch indicates a cell whose coordinate differs from its slot.
	ErrCellMismatch = errors.New("maze: cell coordinate does not match its position")

	// ErrWallCell indicates a cell carrying the reserved Wall kind.
	ErrWallCell = errors.New("maze: wall kind is not allowed inside a maze")

	// ErrBadLink indicates a link that is not between two distinct,
	// orthogonally adjacent, in-bounds cells.
	ErrBadLink = errors.New("maze: link must join two orthogonally adjacent cells")
)

// Coordinate is a 0-based grid position.
type Coordinate struct {
	Row int
	Col int
}

// At is shorthand for Coordinate{Row: row, Col: col}.
func At(row, col int) Coordinate { return Coordinate{Row: row, Col: col} }

// Index returns the row-major index of c in a grid of the given width.
func (c Coordinate) Index(width int) int { return c.Row*width + c.Col }

// FromIndex is the inverse of Coordinate.Index.
func FromIndex(idx, width int) Coordinate {
	return Coordinate{Row: idx / width, Col: idx % width}
}

// Manhattan returns |Δrow| + |Δcol| between c and o.
func (c Coordinate) Manhattan(o Coordinate) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// String renders c as "(row, col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// offsets lists the orthogonal moves in the fixed order up, down, right, left.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, 1}, {0, -1}}

// Orthogonal returns the in-bounds orthogonal neighbours of c inside a
// height×width grid, in the order up, down, right, left. Result length is
// 0..4 (0 only for a 1×1 grid).
func Orthogonal(c Coordinate, height, width int) []Coordinate {
	out := make([]Coordinate, 0, len(offsets))
	for _, d := range offsets {
		n := Coordinate{Row: c.Row + d[0], Col: c.Col + d[1]}
		if n.Row < 0 || n.Row >= height || n.Col < 0 || n.Col >= width {
			continue
		}
		out = append(out, n)
	}

	return out
}

// Cell is a grid slot: its position and terrain.
type Cell struct {
	Coord Coordinate
	Kind  CellKind
}

// Edge is a directed (From, To) pair naming the wall between two adjacent
// cells. Inside a Maze every link is stored in both directions.
type Edge struct {
	From Coordinate
	To   Coordinate
}

// Reversed returns the edge pointing the other way.
func (e Edge) Reversed() Edge { return Edge{From: e.To, To: e.From} }
