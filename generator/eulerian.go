// SPDX-License-Identifier: MIT

package generator

import (
	"github.com/katalvlaran/labyrinth/dsu"
	"github.com/katalvlaran/labyrinth/maze"
)

// eulerian is Eller's row-sweep algorithm. Only the current row's sets matter
// at any time, and each row is grouped by representative in one pass.
type eulerian struct {
	base
}

func (e *eulerian) Algorithm() Algorithm { return Eulerian }

// Generate builds a height×width maze.
//
// Steps, for every row but the last:
//  1. Join each pair of horizontally adjacent cells in different sets with
//     probability 1/2; pairs already in one set go through the cycle policy.
//  2. Group the row's columns by representative. Every group drops one
//     randomly chosen member into the row below; each other member drops too
//     with probability 1/2.
//
// The last row joins every adjacent pair still in different sets, which
// merges all remaining sets into one.
//
// Complexity: O(H·W·α(H·W)). Memory: O(H·W).
func (e *eulerian) Generate(height, width int) *maze.Maze {
	s := newBuildState(height, width, e.rng)
	s.fill()
	sets := dsu.New(height * width)

	for row := 0; row < height-1; row++ {
		e.joinRow(s, sets, row, false)
		e.dropRow(s, sets, row)
	}
	e.joinRow(s, sets, height-1, true)

	return s.freeze()
}

// joinRow runs the horizontal pass over row. When final is set every gap
// between different sets is closed.
func (e *eulerian) joinRow(s *buildState, sets *dsu.DSU, row int, final bool) {
	for col := 0; col+1 < s.width; col++ {
		a, b := maze.At(row, col), maze.At(row, col+1)
		if sets.Connected(s.index(a), s.index(b)) {
			e.redundant(s, a, b)
			continue
		}
		if final || coin(e.rng) {
			sets.Union(s.index(a), s.index(b))
			s.connect(a, b)
		}
	}
}

// dropRow links row to row+1. Cells of row+1 are untouched singletons at this
// point, so no vertical link can close a loop.
func (e *eulerian) dropRow(s *buildState, sets *dsu.DSU, row int) {
	var order []int
	groups := make(map[int][]int, s.width)
	for col := 0; col < s.width; col++ {
		rep := sets.Find(s.index(maze.At(row, col)))
		if _, ok := groups[rep]; !ok {
			order = append(order, rep)
		}
		groups[rep] = append(groups[rep], col)
	}

	for _, rep := range order {
		cols := groups[rep]
		must := e.rng.Intn(len(cols))
		for i, col := range cols {
			if i != must && !coin(e.rng) {
				continue
			}
			up, down := maze.At(row, col), maze.At(row+1, col)
			sets.Union(s.index(up), s.index(down))
			s.connect(up, down)
		}
	}
}
