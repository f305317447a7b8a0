// SPDX-License-Identifier: MIT

package generator

import (
	"github.com/katalvlaran/labyrinth/dsu"
	"github.com/katalvlaran/labyrinth/maze"
)

// prim is randomized Prim over walls: the maze grows outward from one seed
// cell, always removing a uniformly random frontier wall.
type prim struct {
	base
}

func (p *prim) Algorithm() Algorithm { return Prim }

// Generate builds a height×width maze.
//
// Steps:
//  1. Assign terrain, pick a random seed cell and push its walls.
//  2. Draw a random frontier wall. If it reaches a cell outside the seed's
//     set, union, remove the wall and push the new cell's walls; otherwise
//     apply the cycle policy.
//  3. Stop when the frontier is empty.
//
// Every cell is pushed at most once as a new cell, so the frontier holds at
// most 4·H·W walls over the whole run.
// Complexity: O(H·W·α(H·W)). Memory: O(H·W).
func (p *prim) Generate(height, width int) *maze.Maze {
	s := newBuildState(height, width, p.rng)
	s.fill()
	sets := dsu.New(height * width)

	seed := maze.At(p.rng.Intn(height), p.rng.Intn(width))
	frontier := s.nearWalls(nil, seed)

	for len(frontier) > 0 {
		e := drawRemove(p.rng, &frontier)
		if sets.Union(s.index(e.From), s.index(e.To)) {
			s.connect(e.From, e.To)
			frontier = s.nearWalls(frontier, e.To)
			continue
		}
		p.redundant(s, e.From, e.To)
	}

	return s.freeze()
}
