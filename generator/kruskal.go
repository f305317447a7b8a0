// SPDX-License-Identifier: MIT

package generator

import (
	"github.com/katalvlaran/labyrinth/dsu"
	"github.com/katalvlaran/labyrinth/maze"
)

// kruskal is randomized Kruskal: every interior wall is drawn exactly once in
// uniformly random order.
type kruskal struct {
	base
}

func (k *kruskal) Algorithm() Algorithm { return Kruskal }

// Generate builds a height×width maze.
//
// Steps:
//  1. Assign terrain to every cell and collect each interior wall once.
//  2. Draw a random remaining wall. If its cells are in different sets,
//     union them and remove the wall; otherwise apply the cycle policy.
//  3. Stop when the pool is empty.
//
// Complexity: O(H·W·α(H·W)). Memory: O(H·W).
func (k *kruskal) Generate(height, width int) *maze.Maze {
	s := newBuildState(height, width, k.rng)
	s.fill()
	walls := s.interiorWalls()
	sets := dsu.New(height * width)

	for len(walls) > 0 {
		e := drawRemove(k.rng, &walls)
		if sets.Union(s.index(e.From), s.index(e.To)) {
			s.connect(e.From, e.To)
			continue
		}
		k.redundant(s, e.From, e.To)
	}

	return s.freeze()
}
