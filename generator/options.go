// SPDX-License-Identifier: MIT

package generator

import "math/rand"

// Options holds generator knobs resolved from functional options.
type Options struct {
	// Rand is the randomness source owned by the generator.
	Rand *rand.Rand
}

// Option configures a Generator.
type Option func(*Options)

// DefaultOptions returns Options with a clock-seeded source.
func DefaultOptions() Options {
	return Options{Rand: rngFromSeed(clockSeed())}
}

// WithSeed makes generation reproducible. Seed 0 maps to a fixed default
// seed rather than the clock.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rngFromSeed(seed)
	}
}

// WithRand hands the generator an existing source. The generator takes
// ownership; do not share r with other goroutines. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(ErrNilRand.Error())
	}
	return func(o *Options) {
		o.Rand = r
	}
}
