// SPDX-License-Identifier: MIT
//
// Package render draws a maze and an optional solved path.
//
// Text output is a (2H+1)×(2W+1) canvas: even rows and columns hold walls and
// corners, odd/odd slots hold cells, and the remaining slots are the links
// between orthogonal neighbours. Layout builds the canvas without styling;
// Text paints it with lipgloss.
//
// Graph output is Graphviz DOT with one pinned node per cell (ToDOT), and
// SVG produced from it by the neato engine (RenderSVG).
package render
