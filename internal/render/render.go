// Package render provides the styled terminal rendering of a solved board.
// The plain row-by-row rendering lives on board.Format; this one draws only
// the playable interior, boxed, with the first and last step highlighted.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rybkr/knightstour/internal/board"
)

var (
	cellStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	startStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	endStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	gridStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	captionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Pretty renders the interior of a board. Works on unsolved boards too;
// unvisited cells come out as dots.
func Pretty(b *board.Board) string {
	g := b.Geometry()
	width := len(fmt.Sprint(g.Total))

	var rows []string
	for r := g.Lo; r <= g.Hi; r++ {
		var cells []string
		for c := g.Lo; c <= g.Hi; c++ {
			cells = append(cells, renderCell(b, r, c, width))
		}
		rows = append(rows, strings.Join(cells, " "))
	}

	grid := gridStyle.Render(strings.Join(rows, "\n"))
	caption := captionStyle.Render(fmt.Sprintf("%d×%d interior, %d cells",
		g.Hi-g.Lo+1, g.Hi-g.Lo+1, g.Total))
	return lipgloss.JoinVertical(lipgloss.Left, grid, caption)
}

// renderCell styles a single interior cell, fixed width.
func renderCell(b *board.Board, r, c, width int) string {
	v := b.At(r, c)
	switch {
	case v == board.Unvisited:
		return emptyStyle.Render(fmt.Sprintf("%*s", width, "·"))
	case v == 1:
		return startStyle.Render(fmt.Sprintf("%*d", width, v))
	case v == b.Total():
		return endStyle.Render(fmt.Sprintf("%*d", width, v))
	default:
		return cellStyle.Render(fmt.Sprintf("%*d", width, v))
	}
}
