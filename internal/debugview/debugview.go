// Package debugview turns a grid into debug drawing primitives: per-cell
// colors, inset outline segments and a plain-text rendering.
package debugview

import (
	"errors"
	"fmt"
	"image/color"
	"iter"

	"github.com/lawnchairsociety/tilemap/internal/grid"
	"github.com/lawnchairsociety/tilemap/internal/mapgen"
)

// MaxInset is the largest inset; at 0.5 an outline collapses to a point.
const MaxInset = 0.5

var ErrInvalidInset = errors.New("debugview: invalid inset")

var (
	black   = color.RGBA{0x00, 0x00, 0x00, 0xff}
	white   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	green   = color.RGBA{0x00, 0xff, 0x00, 0xff}
	blue    = color.RGBA{0x00, 0x00, 0xff, 0xff}
	magenta = color.RGBA{0xff, 0x00, 0xff, 0xff}
)

var stateColors = map[grid.CellState]color.RGBA{
	grid.Lock:    black,
	grid.Grass:   green,
	grid.Water:   blue,
	grid.Special: magenta,
}

// ColorFor returns the marker color of a state. Unlisted states are white.
func ColorFor(s grid.CellState) color.RGBA {
	if c, ok := stateColors[s]; ok {
		return c
	}
	return white
}

// Segment is a line on the ground plane.
type Segment struct {
	From, To mapgen.Vec2
}

// Outline returns the four sides of the square drawn inside cell i, inset
// from every edge by inset: bottom, right, top, left.
func Outline(g *grid.Grid, i int, inset float64) ([4]Segment, error) {
	if inset < 0 || inset > MaxInset {
		return [4]Segment{}, fmt.Errorf("%w: %g not in [0, %g]", ErrInvalidInset, inset, MaxInset)
	}
	if _, err := g.CellAt(i); err != nil {
		return [4]Segment{}, err
	}

	x, y := g.IndexToCoordinate(i)
	lo := mapgen.Vec2{X: float64(x) + inset, Z: float64(y) + inset}
	hi := mapgen.Vec2{X: float64(x) + 1 - inset, Z: float64(y) + 1 - inset}

	return [4]Segment{
		{From: lo, To: mapgen.Vec2{X: hi.X, Z: lo.Z}},
		{From: mapgen.Vec2{X: hi.X, Z: lo.Z}, To: hi},
		{From: hi, To: mapgen.Vec2{X: lo.X, Z: hi.Z}},
		{From: mapgen.Vec2{X: lo.X, Z: hi.Z}, To: lo},
	}, nil
}

// Outlines yields the outline of every cell in index order. An invalid
// inset yields nothing.
func Outlines(g *grid.Grid, inset float64) iter.Seq2[int, [4]Segment] {
	return func(yield func(int, [4]Segment) bool) {
		for i := 0; i < g.Len(); i++ {
			sides, err := Outline(g, i, inset)
			if err != nil {
				return
			}
			if !yield(i, sides) {
				return
			}
		}
	}
}
