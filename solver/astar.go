// SPDX-License-Identifier: MIT

package solver

import (
	"container/heap"

	"github.com/katalvlaran/labyrinth/maze"
)

// AStarPath returns a path from start to end minimising the summed weight
// of every cell entered after start, or an empty Path when end is
// unreachable. start and end must be in bounds.
//
// Steps:
//  1. Push start with g=0, f=Manhattan(start, end).
//  2. Pop the entry of least f. Skip it if a shorter g was recorded since it
//     was pushed; stop if it is the end cell.
//  3. For each linked neighbour v, g' = g + weight(v). When g' is strictly
//     below dist[v], record it and push v with f = g' + Manhattan(v, end).
//
// Complexity: O((V + E) log V). Memory: O(V + E).
func AStarPath(m *maze.Maze, start, end maze.Coordinate) maze.Path {
	s := newSearch(m, start, end)
	pq := make(nodePQ, 0, len(s.dist))
	heap.Push(&pq, &nodeItem{idx: s.start, g: 0, f: start.Manhattan(end)})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.idx
		if item.g > s.dist[u] {
			continue // stale entry
		}
		if u == s.end {
			break
		}
		for _, nc := range m.Neighbors(s.coord(u)) {
			v := nc.Index(s.width)
			g := s.dist[u] + m.Kind(nc).Weight()
			if g >= s.dist[v] {
				continue
			}
			s.dist[v] = g
			s.prev[v] = u
			heap.Push(&pq, &nodeItem{idx: v, g: g, f: g + nc.Manhattan(end)})
		}
	}

	return s.retrace()
}

// nodeItem is a heap entry: cell index, cost so far and estimated total.
type nodeItem struct {
	idx int
	g   int
	f   int
}

// nodePQ is a min-heap of *nodeItem ordered by f. Outdated entries are left
// in place and skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool { return pq[i].f < pq[j].f }

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
