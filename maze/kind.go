// SPDX-License-Identifier: MIT

package maze

import "math/rand"

// CellKind is a terrain type. Its integer value is the traversal weight.
type CellKind int

// Terrain kinds, cheapest first. Wall is a structural sentinel.
const (
	Wall    CellKind = -1
	Plain   CellKind = 1
	Gold    CellKind = 2
	Passage CellKind = 3
	Sand    CellKind = 4
	Water   CellKind = 5
	Coals   CellKind = 6
	Swamp   CellKind = 7
	Nails   CellKind = 8
	Lava    CellKind = 9
)

// traversable holds every kind a generator may assign.
var traversable = [...]CellKind{Plain, Gold, Passage, Sand, Water, Coals, Swamp, Nails, Lava}

var kindNames = map[CellKind]string{
	Wall:    "wall",
	Plain:   "plain",
	Gold:    "gold",
	Passage: "passage",
	Sand:    "sand",
	Water:   "water",
	Coals:   "coals",
	Swamp:   "swamp",
	Nails:   "nails",
	Lava:    "lava",
}

// Weight is the cost of entering a cell of this kind.
func (k CellKind) Weight() int { return int(k) }

// Traversable reports whether k may appear inside a Maze.
func (k CellKind) Traversable() bool {
	return k >= Plain && k <= Lava
}

func (k CellKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Kinds returns the traversable kinds in ascending weight.
func Kinds() []CellKind {
	out := make([]CellKind, len(traversable))
	copy(out, traversable[:])
	return out
}

// RandomKind draws a traversable kind uniformly from r.
func RandomKind(r *rand.Rand) CellKind {
	return traversable[r.Intn(len(traversable))]
}
