// SPDX-License-Identifier: MIT

package generator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/labyrinth/maze"
)

// Sentinel errors for generator construction.
var (
	// ErrUnknownAlgorithm indicates a selector outside the Algorithm set.
	ErrUnknownAlgorithm = errors.New("generator: unknown algorithm")

	// ErrBadSize indicates a height or width below 1.
	ErrBadSize = errors.New("generator: height and width must be at least 1")

	// ErrNilRand is the panic message of WithRand(nil).
	ErrNilRand = errors.New("generator: rand source is nil")
)

// Algorithm selects a generation strategy.
type Algorithm int

const (
	// Kruskal removes randomly drawn walls between disjoint sets.
	Kruskal Algorithm = iota
	// Prim grows the maze from a random seed cell by frontier walls.
	Prim
	// Eulerian sweeps rows top to bottom (Eller's algorithm).
	Eulerian
)

var algorithmNames = [...]string{
	Kruskal:  "kruskal",
	Prim:     "prim",
	Eulerian: "eulerian",
}

func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Algorithms lists every selector in declaration order.
func Algorithms() []Algorithm { return []Algorithm{Kruskal, Prim, Eulerian} }

// ParseAlgorithm maps a case-insensitive name to its Algorithm.
// "euler" is accepted as an alias of "eulerian".
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "euler" {
		return Eulerian, nil
	}
	for _, a := range Algorithms() {
		if a.String() == name {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Generator produces mazes of a requested size.
type Generator interface {
	// Generate builds a height×width maze. height and width must be ≥ 1.
	Generate(height, width int) *maze.Maze
	// Algorithm reports which strategy this generator runs.
	Algorithm() Algorithm
}

// New returns the Generator for alg. cyclesAllowed controls whether redundant
// walls may be removed per the cycle policy.
func New(alg Algorithm, cyclesAllowed bool, opts ...Option) (Generator, error) {
	b := newBase(cyclesAllowed, opts...)
	switch alg {
	case Kruskal:
		return &kruskal{base: b}, nil
	case Prim:
		return &prim{base: b}, nil
	case Eulerian:
		return &eulerian{base: b}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
}

// Generate is the validating entry point: it checks the size, builds the
// Generator for alg and runs it once.
func Generate(alg Algorithm, cyclesAllowed bool, height, width int, opts ...Option) (*maze.Maze, error) {
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadSize, height, width)
	}
	g, err := New(alg, cyclesAllowed, opts...)
	if err != nil {
		return nil, err
	}

	return g.Generate(height, width), nil
}
