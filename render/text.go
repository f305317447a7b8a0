// SPDX-License-Identifier: MIT

package render

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/labyrinth/maze"
)

var (
	colorWall     = lipgloss.Color("1") // red
	colorOpen     = lipgloss.Color("3") // yellow
	colorPath     = lipgloss.Color("5") // magenta
	colorEndpoint = lipgloss.Color("6") // cyan
	colorInk      = lipgloss.Color("0")
)

// Palette maps each slot class to a style.
type Palette struct {
	Wall     lipgloss.Style
	Open     lipgloss.Style
	Path     lipgloss.Style
	Endpoint lipgloss.Style
}

// NewPalette builds the default background palette on r.
func NewPalette(r *lipgloss.Renderer) Palette {
	return Palette{
		Wall:     r.NewStyle().Background(colorWall).Foreground(colorWall),
		Open:     r.NewStyle().Background(colorOpen).Foreground(colorInk),
		Path:     r.NewStyle().Background(colorPath).Foreground(colorInk),
		Endpoint: r.NewStyle().Background(colorEndpoint).Foreground(colorInk).Bold(true),
	}
}

func (p Palette) style(s Slot) lipgloss.Style {
	switch s {
	case SlotOpen:
		return p.Open
	case SlotPath:
		return p.Path
	case SlotEndpoint:
		return p.Endpoint
	default:
		return p.Wall
	}
}

// TextOptions configures Text.
type TextOptions struct {
	// Renderer decides the colour profile; nil targets stdout.
	Renderer *lipgloss.Renderer
	// Palette overrides the default styles built on Renderer.
	Palette *Palette
}

// TextOption mutates TextOptions.
type TextOption func(*TextOptions)

// WithRenderer styles output for r's colour profile.
func WithRenderer(r *lipgloss.Renderer) TextOption {
	if r == nil {
		panic("render: nil lipgloss renderer")
	}
	return func(o *TextOptions) { o.Renderer = r }
}

// WithPalette replaces the palette.
func WithPalette(p Palette) TextOption {
	return func(o *TextOptions) { o.Palette = &p }
}

// Text renders m with path highlighted. Runs of equally classed slots share one
// styled segment. The default palette targets stdout.
func Text(m *maze.Maze, path maze.Path, opts ...TextOption) string {
	o := TextOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Renderer == nil {
		o.Renderer = lipgloss.NewRenderer(os.Stdout)
	}
	palette := NewPalette(o.Renderer)
	if o.Palette != nil {
		palette = *o.Palette
	}

	c := Layout(m, path)
	var sb strings.Builder
	for r := 0; r < c.Rows(); r++ {
		start := 0
		for col := 1; col <= c.Cols(); col++ {
			if col < c.Cols() && c.Slot(r, col) == c.Slot(r, start) {
				continue
			}
			seg := string(c.glyphs[r*c.cols+start : r*c.cols+col])
			sb.WriteString(palette.style(c.Slot(r, start)).Render(seg))
			start = col
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
