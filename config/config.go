// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/solver"
)

var (
	// ErrInvalidBounds indicates a non-positive minimum or a minimum above its maximum.
	ErrInvalidBounds = errors.New("config: invalid bounds")

	// ErrOutOfRange indicates a size or coordinate outside the configured bounds.
	ErrOutOfRange = errors.New("config: value out of range")
)

// Bounds limits the maze size accepted from users.
type Bounds struct {
	MinHeight int `toml:"min_height"`
	MaxHeight int `toml:"max_height"`
	MinWidth  int `toml:"min_width"`
	MaxWidth  int `toml:"max_width"`
}

// Defaults holds the choices used when a flag or prompt is not given.
type Defaults struct {
	Generator string `toml:"generator"`
	Solver    string `toml:"solver"`
	Cycles    bool   `toml:"cycles"`
	// Seed 0 asks for a clock-derived seed.
	Seed int64 `toml:"seed"`
}

// Config is the decoded settings file.
type Config struct {
	Bounds   Bounds   `toml:"bounds"`
	Defaults Defaults `toml:"defaults"`
}

// Default returns the built-in settings: sizes 1..30 in both dimensions,
// Kruskal without cycles, A*.
func Default() Config {
	return Config{
		Bounds: Bounds{MinHeight: 1, MaxHeight: 30, MinWidth: 1, MaxWidth: 30},
		Defaults: Defaults{
			Generator: generator.Kruskal.String(),
			Solver:    solver.AStar.String(),
		},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML data over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("parse config: unknown key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks bounds ordering and the default algorithm names.
func (c Config) Validate() error {
	b := c.Bounds
	if b.MinHeight < 1 || b.MinHeight > b.MaxHeight {
		return fmt.Errorf("%w: height [%d, %d]", ErrInvalidBounds, b.MinHeight, b.MaxHeight)
	}
	if b.MinWidth < 1 || b.MinWidth > b.MaxWidth {
		return fmt.Errorf("%w: width [%d, %d]", ErrInvalidBounds, b.MinWidth, b.MaxWidth)
	}
	if _, err := generator.ParseAlgorithm(c.Defaults.Generator); err != nil {
		return err
	}
	if _, err := solver.ParseAlgorithm(c.Defaults.Solver); err != nil {
		return err
	}
	return nil
}

// Generator returns the parsed default generator.
func (c Config) Generator() generator.Algorithm {
	alg, _ := generator.ParseAlgorithm(c.Defaults.Generator)
	return alg
}

// Solver returns the parsed default solver.
func (c Config) Solver() solver.Algorithm {
	alg, _ := solver.ParseAlgorithm(c.Defaults.Solver)
	return alg
}

// CheckSize reports whether height and width lie inside the bounds.
func (c Config) CheckSize(height, width int) error {
	b := c.Bounds
	if height < b.MinHeight || height > b.MaxHeight {
		return fmt.Errorf("%w: height %d not in [%d, %d]", ErrOutOfRange, height, b.MinHeight, b.MaxHeight)
	}
	if width < b.MinWidth || width > b.MaxWidth {
		return fmt.Errorf("%w: width %d not in [%d, %d]", ErrOutOfRange, width, b.MinWidth, b.MaxWidth)
	}
	return nil
}

// CheckCoordinate reports whether p lies inside a height×width grid.
func CheckCoordinate(p maze.Coordinate, height, width int) error {
	if p.Row < 0 || p.Row >= height {
		return fmt.Errorf("%w: row %d not in [0, %d]", ErrOutOfRange, p.Row, height-1)
	}
	if p.Col < 0 || p.Col >= width {
		return fmt.Errorf("%w: col %d not in [0, %d]", ErrOutOfRange, p.Col, width-1)
	}
	return nil
}
