// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/render"
	"github.com/katalvlaran/labyrinth/solver"
)

func (c *CLI) playCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Choose generator, size, endpoints and solver interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runPlay(cmd.Context())
		},
	}
}

// runPlay asks for every setting in turn, re-asking only the question whose
// answer was invalid, then draws the solved maze.
func (c *CLI) runPlay(ctx context.Context) error {
	logger := loggerFromContext(ctx)
	p := newPrompter(c.in, c.out)
	b := c.cfg.Bounds

	printTitle(c.out, "Labyrinth")

	gens := generator.Algorithms()
	gi, err := p.choose("Algorithm to generate maze (print number):", names(gens))
	if err != nil {
		return err
	}
	cycles, err := p.yesNo("Are cycles allowed in the maze?")
	if err != nil {
		return err
	}
	height, err := p.number("Write height", b.MinHeight, b.MaxHeight)
	if err != nil {
		return err
	}
	width, err := p.number("Write width", b.MinWidth, b.MaxWidth)
	if err != nil {
		return err
	}
	start, err := p.coordinate("Write start point as: row col", height, width)
	if err != nil {
		return err
	}
	end, err := p.coordinate("Write end point as: row col", height, width)
	if err != nil {
		return err
	}
	sols := solver.Algorithms()
	si, err := p.choose("Available solvers:", names(sols))
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	prog := newProgress(logger)
	m, err := generator.Generate(gens[gi], cycles, height, width, seedOptions(c.cfg.Defaults.Seed)...)
	if err != nil {
		return err
	}
	path, err := solver.Solve(sols[si], m, start, end)
	if err != nil {
		return err
	}
	prog.done("solved maze", "generator", gens[gi], "solver", sols[si])

	fmt.Fprint(c.out, render.Text(m, path, render.WithRenderer(c.renderer())))
	if len(path) == 0 {
		printWarning(c.out, "No path from %v to %v", start, end)
	} else {
		printKeyValue(c.out, "steps", fmt.Sprint(path.Steps()))
		printKeyValue(c.out, "cost", fmt.Sprint(path.Cost(m)))
	}
	printKeyValue(c.out, "generator", gens[gi].String())
	printKeyValue(c.out, "solver", sols[si].String())
	return nil
}

func names[T fmt.Stringer](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.String()
	}
	return out
}
