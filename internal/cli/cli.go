// SPDX-License-Identifier: MIT

package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/generator"
)

const appName = "labyrinth"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	in  io.Reader
	out io.Writer
	cfg config.Config

	configPath string
	verbose    bool
	noColor    bool
}

// New creates a CLI reading answers from in, printing results to out and
// logging to logw.
func New(in io.Reader, out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		in:     in,
		out:    out,
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Config returns the settings in effect.
func (c *CLI) Config() config.Config { return c.cfg }

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Labyrinth generates grid mazes and finds paths through them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			if c.configPath != "" {
				cfg, err := config.Load(c.configPath)
				if err != nil {
					return err
				}
				c.cfg = cfg
				c.Logger.Debug("loaded config", "path", c.configPath)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML settings file")
	root.PersistentFlags().BoolVar(&c.noColor, "no-color", false, "disable colours in text output")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.playCommand())

	return root
}

// renderer returns the lipgloss renderer for maze output.
func (c *CLI) renderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(c.out)
	if c.noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// seedOptions turns a seed into generator options; 0 keeps the clock seed.
func seedOptions(seed int64) []generator.Option {
	if seed == 0 {
		return nil
	}
	return []generator.Option{generator.WithSeed(seed)}
}
