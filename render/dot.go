// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/katalvlaran/labyrinth/maze"
)

const (
	dotFillOpen     = "gold"
	dotFillPath     = "magenta"
	dotFillEndpoint = "cyan"
	dotEdgePath     = "magenta"
)

// nodeID names the DOT node of cell c.
func nodeID(c maze.Coordinate) string { return fmt.Sprintf("r%dc%d", c.Row, c.Col) }

// ToDOT converts m to an undirected Graphviz graph. Nodes are pinned on the
// grid (column right, row down) so any engine honouring pos keeps the shape.
// Cells and links of path are highlighted.
func ToDOT(m *maze.Maze, path maze.Path) string {
	var buf bytes.Buffer
	buf.WriteString("graph maze {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  splines=false;\n")
	buf.WriteString("  node [shape=square, style=filled, fixedsize=true, width=0.5, fontsize=12, fillcolor=" + dotFillOpen + "];\n")
	buf.WriteString("  edge [penwidth=2];\n")
	buf.WriteString("\n")

	for r := 0; r < m.Height(); r++ {
		for c := 0; c < m.Width(); c++ {
			at := maze.At(r, c)
			attrs := []string{
				fmt.Sprintf("pos=\"%d,%d!\"", c, -r),
				fmt.Sprintf("label=\"%d\"", m.Kind(at).Weight()),
			}
			if fill := dotFill(at, path); fill != "" {
				attrs = append(attrs, "fillcolor="+fill)
			}
			fmt.Fprintf(&buf, "  %s [%s];\n", nodeID(at), strings.Join(attrs, ", "))
		}
	}

	buf.WriteString("\n")
	steps := pathSteps(path)
	for _, e := range m.Edges() {
		if steps[e] {
			fmt.Fprintf(&buf, "  %s -- %s [color=%s, penwidth=4];\n", nodeID(e.From), nodeID(e.To), dotEdgePath)
			continue
		}
		fmt.Fprintf(&buf, "  %s -- %s;\n", nodeID(e.From), nodeID(e.To))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func dotFill(at maze.Coordinate, path maze.Path) string {
	switch {
	case len(path) == 0:
		return ""
	case at == path[0], at == path[len(path)-1]:
		return dotFillEndpoint
	case path.Contains(at):
		return dotFillPath
	}
	return ""
}
