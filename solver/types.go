// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/labyrinth/maze"
)

// Sentinel errors returned by Solve and ParseAlgorithm.
var (
	// ErrNilMaze indicates a nil *maze.Maze.
	ErrNilMaze = errors.New("solver: maze is nil")

	// ErrOutOfBounds indicates a start or end outside the maze.
	ErrOutOfBounds = errors.New("solver: coordinate out of bounds")

	// ErrUnknownAlgorithm indicates a selector outside the Algorithm set.
	ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")
)

// Algorithm selects a search strategy.
type Algorithm int

const (
	// BFS minimises the number of moves.
	BFS Algorithm = iota
	// AStar minimises the summed weight of entered cells.
	AStar
)

func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "bfs"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Algorithms lists every selector in declaration order.
func Algorithms() []Algorithm { return []Algorithm{BFS, AStar} }

// ParseAlgorithm maps a case-insensitive name to its Algorithm.
// "a*" and "a-star" are accepted for AStar.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return BFS, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Func is the shape shared by BFSPath and AStarPath.
type Func func(m *maze.Maze, start, end maze.Coordinate) maze.Path

// Lookup returns the search function for alg.
func Lookup(alg Algorithm) (Func, error) {
	switch alg {
	case BFS:
		return BFSPath, nil
	case AStar:
		return AStarPath, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
}

// Solve validates its inputs and runs alg from start to end.
// An unreachable end is not an error: the returned Path is empty.
func Solve(alg Algorithm, m *maze.Maze, start, end maze.Coordinate) (maze.Path, error) {
	fn, err := Lookup(alg)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNilMaze
	}
	for _, c := range [...]maze.Coordinate{start, end} {
		if !m.InBounds(c) {
			return nil, fmt.Errorf("%w: %v in %dx%d maze", ErrOutOfBounds, c, m.Height(), m.Width())
		}
	}

	return fn(m, start, end), nil
}
