package board

import (
	"fmt"
	"strconv"
	"strings"
)

type CellView int8

const (
	Hidden  CellView = -2
	Flagged CellView = -1
	Mine    CellView = 9
	// 0-8 for a revealed cell with that many mined neighbors
)

func (v CellView) String() string {
	switch {
	case v == Hidden:
		return "."
	case v == Flagged:
		return "F"
	case v == Mine:
		return "*"
	case v == 0:
		return " "
	case 1 <= v && v <= 8:
		return strconv.Itoa(int(v))
	default:
		return "!"
	}
}

// At classifies the cell at x, y for a renderer. Out-of-bounds coordinates
// read as Hidden.
func (b *Board) At(x, y int) CellView {
	if !b.params.InBounds(x, y) {
		return Hidden
	}
	c := b.cells[y*b.params.Width+x]
	switch {
	case !c.Revealed && c.Flagged:
		return Flagged
	case !c.Revealed:
		return Hidden
	case c.Mine:
		return Mine
	default:
		return CellView(c.Neighbors)
	}
}

type View []CellView

// View returns the whole grid as display classifications, row by row.
func (b *Board) View() View {
	g := make(View, len(b.cells))
	for i := range b.cells {
		g[i] = b.At(i%b.params.Width, i/b.params.Width)
	}
	return g
}

func (g View) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
