// SPDX-License-Identifier: MIT

package maze

import (
	"slices"
	"strings"
)

// Path is an ordered start→end sequence of coordinates, both inclusive.
// An empty Path means the end was unreachable.
type Path []Coordinate

// Steps returns the number of moves along p (len-1, or 0 when empty).
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Cost sums the weights of every cell entered after the start. Entering is
// what costs, so the start cell itself is free.
func (p Path) Cost(m *Maze) int {
	total := 0
	for i := 1; i < len(p); i++ {
		total += m.Kind(p[i]).Weight()
	}

	return total
}

// Contains reports whether c lies on p.
func (p Path) Contains(c Coordinate) bool { return slices.Contains(p, c) }

// Valid reports whether every consecutive pair of p is linked in m.
func (p Path) Valid(m *Maze) bool {
	for i := 1; i < len(p); i++ {
		if !m.Connected(p[i-1], p[i]) {
			return false
		}
	}
	return len(p) == 0 || m.InBounds(p[0])
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
