// SPDX-License-Identifier: MIT
//
// Package generator builds random grid mazes as spanning trees over the
// orthogonal grid graph, optionally sprinkled with extra loop-forming links.
//
// Algorithms:
//
//   - Kruskal:  shuffle-draw every interior wall once; remove it when its two
//     cells are still in different DSU sets.
//   - Prim:     grow from one random cell, drawing walls uniformly from the
//     frontier of the visited region.
//   - Eulerian: sweep rows top to bottom, joining neighbours at random and
//     dropping at least one vertical link per set into the next row; the
//     last row joins every remaining gap.
//
// Every variant guarantees that each cell is reachable from every other.
// With cycles disallowed the result is a spanning tree with exactly
// height*width-1 links.
//
// Cycle policy:
//
//	Whenever a wall between two already-connected cells is considered and
//	cycles are allowed, it is removed anyway when a uniform draw d in [1,100)
//	satisfies d*0.07 < 1. With cycles disallowed it always stays.
//
// Randomness:
//
//	Each Generator owns one *rand.Rand (see WithSeed, WithRand). It is NOT
//	safe for concurrent use; give every goroutine its own Generator. The
//	resulting *maze.Maze is immutable and freely shareable.
//
// Terrain:
//
//	Every cell receives a uniformly random traversable kind the first time
//	the build state touches it, and keeps it.
//
// Errors:
//
//   - ErrUnknownAlgorithm: selector outside the closed Algorithm set.
//   - ErrBadSize:          height or width below 1 (Generate only).
package generator
