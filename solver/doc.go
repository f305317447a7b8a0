// SPDX-License-Identifier: MIT
//
// Package solver finds paths between two cells of a *maze.Maze.
//
// Algorithms:
//
//   - BFS (BFSPath):     fewest moves. Cells are marked on enqueue and the search stops
//     once the end cell is dequeued.
//   - AStar (AStarPath): cheapest path where entering a cell costs its terrain weight.
//     The frontier is a min-heap keyed by g + Manhattan(cell, end). Every
//     weight is ≥ 1 and moves are orthogonal, so the heuristic never
//     overestimates and the first time the end cell is popped its cost is
//     optimal.
//
// Both algorithms traverse only links present in the maze; cells behind
// un-removed walls are unreachable and produce an empty Path.
//
// Preconditions:
//
//	BFSPath and AStarPath trust their inputs: start and end must lie inside the
//	maze. Solve is the validating entry point and reports ErrNilMaze,
//	ErrOutOfBounds and ErrUnknownAlgorithm instead.
//
// Complexity:
//
//   - BFS:   O(V + E) time, O(V) memory.
//   - AStar: O((V + E) log V) time, O(V + E) memory (lazy decrease-key).
//
// Solvers never mutate the maze, so any number may run on one maze concurrently.
package solver
