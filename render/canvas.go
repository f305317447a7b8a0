// SPDX-License-Identifier: MIT

package render

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/labyrinth/maze"
)

// Slot classifies one canvas position for styling.
type Slot int

const (
	SlotWall Slot = iota
	SlotOpen
	SlotPath
	SlotEndpoint
)

const (
	glyphWall  = '#'
	glyphOpen  = ' '
	glyphPath  = '*'
	glyphStart = 'S'
	glyphEnd   = 'E'
)

// Canvas is the unstyled text rendering of a maze.
type Canvas struct {
	rows, cols int
	glyphs     []rune
	slots      []Slot
}

// Rows returns 2*height+1.
func (c *Canvas) Rows() int { return c.rows }

// Cols returns 2*width+1.
func (c *Canvas) Cols() int { return c.cols }

// Glyph returns the character at canvas position (r, col).
func (c *Canvas) Glyph(r, col int) rune { return c.glyphs[r*c.cols+col] }

// Slot returns the style class at canvas position (r, col).
func (c *Canvas) Slot(r, col int) Slot { return c.slots[r*c.cols+col] }

// String joins the glyphs row by row, newline terminated.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.rows * (c.cols + 1))
	for r := 0; r < c.rows; r++ {
		sb.WriteString(string(c.glyphs[r*c.cols : (r+1)*c.cols]))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (c *Canvas) set(r, col int, g rune, s Slot) {
	c.glyphs[r*c.cols+col] = g
	c.slots[r*c.cols+col] = s
}

// Layout places every cell and link of m onto a canvas and marks the cells
// and links of path. An empty path marks nothing.
func Layout(m *maze.Maze, path maze.Path) *Canvas {
	h, w := m.Height(), m.Width()
	c := &Canvas{rows: 2*h + 1, cols: 2*w + 1}
	c.glyphs = make([]rune, c.rows*c.cols)
	c.slots = make([]Slot, c.cols*c.rows)
	for i := range c.glyphs {
		c.glyphs[i] = glyphWall
	}

	steps := pathSteps(path)
	for r := 0; r < h; r++ {
		for col := 0; col < w; col++ {
			at := maze.At(r, col)
			g, s := cellGlyph(m.Kind(at), at, path)
			c.set(2*r+1, 2*col+1, g, s)

			for _, next := range []maze.Coordinate{maze.At(r, col+1), maze.At(r+1, col)} {
				if !m.Connected(at, next) {
					continue
				}
				lr, lc := r+next.Row+1, col+next.Col+1
				if steps[maze.Edge{From: at, To: next}] {
					c.set(lr, lc, glyphPath, SlotPath)
				} else {
					c.set(lr, lc, glyphOpen, SlotOpen)
				}
			}
		}
	}
	return c
}

func cellGlyph(k maze.CellKind, at maze.Coordinate, path maze.Path) (rune, Slot) {
	if len(path) > 0 {
		switch {
		case at == path[0]:
			return glyphStart, SlotEndpoint
		case at == path[len(path)-1]:
			return glyphEnd, SlotEndpoint
		case path.Contains(at):
			return glyphPath, SlotPath
		}
	}
	if k == maze.Plain {
		return glyphOpen, SlotOpen
	}
	return rune(strconv.Itoa(k.Weight())[0]), SlotOpen
}

// pathSteps indexes consecutive path pairs in both directions.
func pathSteps(path maze.Path) map[maze.Edge]bool {
	steps := make(map[maze.Edge]bool, 2*len(path))
	for i := 1; i < len(path); i++ {
		e := maze.Edge{From: path[i-1], To: path[i]}
		steps[e] = true
		steps[e.Reversed()] = true
	}
	return steps
}
