// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
	"github.com/katalvlaran/labyrinth/solver"
)

const (
	formatText = "text"
	formatDOT  = "dot"
	formatSVG  = "svg"

	defaultSize = 10
)

var (
	// ErrBadFormat indicates an unsupported --format value.
	ErrBadFormat = errors.New("cli: unknown output format")

	// ErrEndpoints indicates that only one of --from and --to was given.
	ErrEndpoints = errors.New("cli: --from and --to must be given together")
)

// generateOpts holds the flags of the generate command. Empty strings and
// unchanged flags fall back to the config defaults.
type generateOpts struct {
	algorithm string
	cycles    bool
	height    int
	width     int
	seed      int64
	solver    string
	from      string
	to        string
	format    string
	output    string
}

func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{height: defaultSize, width: defaultSize, format: formatText}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a maze and optionally solve it",
		Example: `  labyrinth generate --algorithm prim --height 8 --width 12
  labyrinth generate --cycles --from 0,0 --to 7,11 --solver bfs
  labyrinth generate --format svg --from 0,0 --to 9,9 -o maze.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if !flags.Changed("algorithm") {
				opts.algorithm = c.cfg.Defaults.Generator
			}
			if !flags.Changed("solver") {
				opts.solver = c.cfg.Defaults.Solver
			}
			if !flags.Changed("cycles") {
				opts.cycles = c.cfg.Defaults.Cycles
			}
			if !flags.Changed("seed") {
				opts.seed = c.cfg.Defaults.Seed
			}
			return c.runGenerate(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "", "generator: "+strings.Join(names(generator.Algorithms()), ", "))
	cmd.Flags().BoolVar(&opts.cycles, "cycles", false, "allow cycles")
	cmd.Flags().IntVarP(&opts.height, "height", "H", opts.height, "rows")
	cmd.Flags().IntVarP(&opts.width, "width", "W", opts.width, "columns")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (0 = clock)")
	cmd.Flags().StringVarP(&opts.solver, "solver", "s", "", "solver: "+strings.Join(names(solver.Algorithms()), ", "))
	cmd.Flags().StringVar(&opts.from, "from", "", "start cell as row,col")
	cmd.Flags().StringVar(&opts.to, "to", "", "end cell as row,col")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, dot, svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, opts generateOpts) error {
	logger := loggerFromContext(ctx)

	genAlg, err := generator.ParseAlgorithm(opts.algorithm)
	if err != nil {
		return err
	}
	if err := c.cfg.CheckSize(opts.height, opts.width); err != nil {
		return err
	}
	format := strings.ToLower(opts.format)
	if format != formatText && format != formatDOT && format != formatSVG {
		return fmt.Errorf("%w: %q", ErrBadFormat, opts.format)
	}

	prog := newProgress(logger)
	m, err := generator.Generate(genAlg, opts.cycles, opts.height, opts.width, seedOptions(opts.seed)...)
	if err != nil {
		return err
	}
	prog.done("generated maze", "algorithm", genAlg, "size", fmt.Sprintf("%dx%d", opts.height, opts.width), "links", m.EdgeCount())

	path, err := c.solveFlags(ctx, m, opts)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case formatText:
		data = []byte(render.Text(m, path, render.WithRenderer(c.renderer())))
	case formatDOT:
		data = []byte(render.ToDOT(m, path))
	case formatSVG:
		prog := newProgress(logger)
		if data, err = render.SVG(ctx, m, path); err != nil {
			return err
		}
		prog.done("rendered svg", "bytes", len(data))
	}

	if opts.output == "" {
		_, err = c.out.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printFile(c.out, opts.output)
	return nil
}

// solveFlags resolves --from/--to/--solver; no endpoints means no path.
func (c *CLI) solveFlags(ctx context.Context, m *maze.Maze, opts generateOpts) (maze.Path, error) {
	if opts.from == "" && opts.to == "" {
		return nil, nil
	}
	if opts.from == "" || opts.to == "" {
		return nil, ErrEndpoints
	}
	start, err := flagCoordinate("from", opts.from, m)
	if err != nil {
		return nil, err
	}
	end, err := flagCoordinate("to", opts.to, m)
	if err != nil {
		return nil, err
	}
	alg, err := solver.ParseAlgorithm(opts.solver)
	if err != nil {
		return nil, err
	}

	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	path, err := solver.Solve(alg, m, start, end)
	if err != nil {
		return nil, err
	}
	if len(path) == 0 {
		logger.Warn("no path", "from", start, "to", end)
		return nil, nil
	}
	prog.done("solved maze", "solver", alg, "steps", path.Steps(), "cost", path.Cost(m))
	return path, nil
}

func flagCoordinate(name, value string, m *maze.Maze) (maze.Coordinate, error) {
	p, err := parseCoordinate(value)
	if err != nil {
		return maze.Coordinate{}, fmt.Errorf("--%s %q: %w", name, value, err)
	}
	if err := config.CheckCoordinate(p, m.Height(), m.Width()); err != nil {
		return maze.Coordinate{}, fmt.Errorf("--%s: %w", name, err)
	}
	return p, nil
}
