// SPDX-License-Identifier: MIT

package solver

import (
	"math"

	"github.com/katalvlaran/labyrinth/maze"
)

// inf marks a cell with no known distance.
const inf = math.MaxInt

// none marks a cell without predecessor.
const none = -1

// search is the state shared by both algorithms: distance and predecessor
// arrays indexed row-major.
type search struct {
	m     *maze.Maze
	width int
	start int
	end   int
	dist  []int
	prev  []int
}

func newSearch(m *maze.Maze, start, end maze.Coordinate) *search {
	n := m.Size()
	s := &search{
		m:     m,
		width: m.Width(),
		start: start.Index(m.Width()),
		end:   end.Index(m.Width()),
		dist:  make([]int, n),
		prev:  make([]int, n),
	}
	for i := range s.dist {
		s.dist[i] = inf
		s.prev[i] = none
	}
	s.dist[s.start] = 0

	return s
}

func (s *search) coord(idx int) maze.Coordinate { return maze.FromIndex(idx, s.width) }

// retrace walks predecessors back from end and reverses them. An end that was
// never reached yields an empty Path.
func (s *search) retrace() maze.Path {
	if s.dist[s.end] == inf {
		return nil
	}
	var path maze.Path
	for at := s.end; at != none; at = s.prev[at] {
		path = append(path, s.coord(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
