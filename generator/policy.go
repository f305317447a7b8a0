// SPDX-License-Identifier: MIT

package generator

import (
	"math/rand"

	"github.com/katalvlaran/labyrinth/maze"
)

// Cycle policy constants: a redundant wall is removed when a draw d in
// [cycleFloor, cycleCeil) satisfies d*cycleProbability < 1.
const (
	cycleFloor       = 1
	cycleCeil        = 100
	cycleProbability = 0.07
)

// base carries what every variant shares: the randomness source and the
// cycle flag.
type base struct {
	rng    *rand.Rand
	cycles bool
}

func newBase(cyclesAllowed bool, opts ...Option) base {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return base{rng: o.Rand, cycles: cyclesAllowed}
}

// CyclesAllowed reports the construction-time cycle flag.
func (b *base) CyclesAllowed() bool { return b.cycles }

// redundant applies the cycle policy to a wall whose cells are already
// connected. It reports whether the wall was removed.
func (b *base) redundant(s *buildState, from, to maze.Coordinate) bool {
	if !b.cycles || !allowCycle(b.rng) {
		return false
	}
	s.connect(from, to)
	return true
}

// allowCycle draws once from r and applies the threshold.
func allowCycle(r *rand.Rand) bool {
	draw := cycleFloor + r.Intn(cycleCeil-cycleFloor)
	return float64(draw)*cycleProbability < 1
}
