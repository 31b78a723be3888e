package debugview

import (
	"fmt"
	"io"
	"strings"

	"github.com/lawnchairsociety/tilemap/internal/grid"
)

var glyphs = map[grid.CellState]byte{
	grid.Normal:  '.',
	grid.Lock:    '#',
	grid.Water:   '~',
	grid.Grass:   '"',
	grid.Special: '*',
}

// Glyph returns the character used for a state in text renderings.
func Glyph(s grid.CellState) byte {
	if b, ok := glyphs[s]; ok {
		return b
	}
	return '?'
}

// ASCIIOptions controls RenderASCII.
type ASCIIOptions struct {
	Legend bool
	Axes   bool
}

// RenderASCII writes one line per row. The top line is the highest y, so
// the picture matches a top-down view with +z pointing up.
func RenderASCII(w io.Writer, g *grid.Grid, opts ASCIIOptions) error {
	var out strings.Builder
	cells := g.Cells()

	for y := g.Height() - 1; y >= 0; y-- {
		if opts.Axes {
			fmt.Fprintf(&out, "%2d ", y)
		}
		for x := 0; x < g.Width(); x++ {
			out.WriteByte(Glyph(cells[g.CoordinateToIndex(x, y)].State))
		}
		out.WriteByte('\n')
	}

	if opts.Axes {
		out.WriteString("   ")
		for x := 0; x < g.Width(); x++ {
			out.WriteByte(byte('0' + x%10))
		}
		out.WriteByte('\n')
	}

	if opts.Legend {
		out.WriteString(legend())
	}

	_, err := io.WriteString(w, out.String())
	return err
}

func legend() string {
	var b strings.Builder
	b.WriteString("\nLegend:\n")
	for _, s := range grid.AllStates() {
		fmt.Fprintf(&b, "  [%c] %s\n", Glyph(s), s)
	}
	return b.String()
}
