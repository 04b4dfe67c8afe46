// Package cli renders solved boards and drives interactive play.
package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Kromey/boggle-solver/pkg/board"
	"github.com/Kromey/boggle-solver/pkg/solver"
	"github.com/charmbracelet/lipgloss"
)

var boardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1).
	Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

// RenderBoard returns the grid framed for the terminal. Cells are padded to
// two characters so the qu die lines up with its neighbors.
func RenderBoard(b *board.Board) string {
	rows := make([]string, 0, board.Size)
	for y := 0; y < board.Size; y++ {
		cells := make([]string, 0, board.Size)
		for x := 0; x < board.Size; x++ {
			cells = append(cells, fmt.Sprintf("%-2s", b.Cell(x, y)))
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return boardStyle.Render(strings.Join(rows, "\n"))
}

// WriteResults prints the solved word list in aligned columns, one word per
// line with its points, then the summary line.
func WriteResults(w io.Writer, res *solver.Results, showPoints bool) {
	tw := tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
	for _, word := range res.Words() {
		if showPoints {
			fmt.Fprintf(tw, "%s\t%d\n", word, solver.Points(len(word)))
		} else {
			fmt.Fprintf(tw, "%s\n", word)
		}
	}
	tw.Flush()
	fmt.Fprintf(w, "This list of %d words is worth %d points\n", res.Len(), res.TotalScore())
}
