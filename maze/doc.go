// SPDX-License-Identifier: MIT
//
// Package maze defines the grid model shared by generators, solvers and
// renderers: coordinates, terrain kinds, cells, wall edges, the immutable
// Maze snapshot and the Path result.
//
// What:
//
//   - Coordinate is a 0-based (row, col) value; cells are indexed row-major as
//     row*width+col.
//   - CellKind enumerates terrains. Each carries a traversal weight charged
//     when a weighted search enters the cell. Wall is reserved and never
//     appears inside a Maze.
//   - Maze owns a height×width grid and an undirected adjacency graph keyed by
//     Coordinate. Adjacency lists keep insertion order and hold no duplicates.
//   - Path is an ordered start→end sequence of coordinates; empty means
//     unreachable.
//
// Immutability:
//
//	A Maze is frozen by New/FromKinds and never mutated afterwards. Grid,
//	Neighbors and Edges return copies, so a Maze may be read from any number
//	of goroutines.
//
// Errors:
//
//   - ErrEmptyGrid:      no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrCellMismatch:   a cell's coordinate does not match its slot.
//   - ErrWallCell:       a cell carries the reserved Wall kind.
//   - ErrBadLink:        a link is a self-loop, leaves the grid or joins
//     non-adjacent cells.
package maze
