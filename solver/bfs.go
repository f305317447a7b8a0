// SPDX-License-Identifier: MIT

package solver

import "github.com/katalvlaran/labyrinth/maze"

// BFSPath returns a path from start to end with the fewest moves, or an
// empty Path when end is unreachable. Among equally short paths the one whose
// predecessors were enqueued first wins. start and end must be in bounds.
//
// Complexity: O(V + E). Memory: O(V).
func BFSPath(m *maze.Maze, start, end maze.Coordinate) maze.Path {
	s := newSearch(m, start, end)
	visited := make([]bool, len(s.dist))
	queue := make([]int, 1, len(s.dist))
	queue[0] = s.start
	visited[s.start] = true

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == s.end {
			break
		}
		for _, nc := range m.Neighbors(s.coord(u)) {
			v := nc.Index(s.width)
			if visited[v] {
				continue
			}
			// mark on enqueue so no cell is queued twice
			visited[v] = true
			s.dist[v] = s.dist[u] + 1
			s.prev[v] = u
			queue = append(queue, v)
		}
	}

	return s.retrace()
}
