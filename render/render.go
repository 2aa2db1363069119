// Package render turns a solved grid into something a human can look at:
// a terminal printout or a PNG.
package render

import (
	"strings"

	"github.com/crossfill/crossfill/grid"
	"github.com/crossfill/crossfill/solver"
)

// Letters expands an assignment into a height x width rune grid. Cells not
// covered by any assigned slot hold zero.
func Letters(g *grid.Grid, a solver.Assignment) [][]rune {
	letters := make([][]rune, g.Height)
	for i := range letters {
		letters[i] = make([]rune, g.Width)
	}
	// Index bytes, not runes: the solver matches overlap letters by byte
	// position, and a slot's length is its cell count.
	for s, w := range a {
		for k := 0; k < len(w); k++ {
			row, col := s.Cell(k)
			letters[row][col] = rune(w[k])
		}
	}
	return letters
}

// Text renders the filled grid for the terminal: blocked cells as full
// blocks, unassigned fillable cells as spaces.
func Text(g *grid.Grid, a solver.Assignment) string {
	letters := Letters(g, a)
	var sb strings.Builder
	for i := 0; i < g.Height; i++ {
		for j := 0; j < g.Width; j++ {
			switch {
			case !g.Fillable(i, j):
				sb.WriteRune('█')
			case letters[i][j] == 0:
				sb.WriteRune(' ')
			default:
				sb.WriteRune(letters[i][j])
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
