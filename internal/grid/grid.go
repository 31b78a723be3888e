// Package grid holds the rectangular cell model shared by map generation,
// placement geometry and debug views.
//
// Cells are stored row-major in a flat slice: the index increases fastest
// along x, so index i maps to (i % width, i / width).
package grid

import (
	"errors"
	"fmt"
)

// Size limits for either dimension.
const (
	MinSize = 1
	MaxSize = 50
)

var (
	ErrInvalidDimensions = errors.New("grid: invalid dimensions")
	ErrIndexOutOfRange   = errors.New("grid: index out of range")
	ErrNotAdjacent       = errors.New("grid: cells are not adjacent")
)

// Dimensions is the width and height of a grid in cells.
type Dimensions struct {
	Width  int
	Height int
}

// Validate checks both dimensions against [MinSize, MaxSize].
func (d Dimensions) Validate() error {
	if d.Width < MinSize || d.Width > MaxSize {
		return fmt.Errorf("%w: width %d not in [%d, %d]", ErrInvalidDimensions, d.Width, MinSize, MaxSize)
	}
	if d.Height < MinSize || d.Height > MaxSize {
		return fmt.Errorf("%w: height %d not in [%d, %d]", ErrInvalidDimensions, d.Height, MinSize, MaxSize)
	}
	return nil
}

// Area returns the number of cells.
func (d Dimensions) Area() int { return d.Width * d.Height }

// Grid is a fixed-size map of cells. A Grid is never resized; new
// dimensions require a new Grid.
type Grid struct {
	dims  Dimensions
	cells []Cell
	edges *EdgeOverlay
}

// New allocates a width x height grid with every cell set to the zero Cell.
func New(width, height int) (*Grid, error) {
	return NewWithDimensions(Dimensions{Width: width, Height: height})
}

// NewWithDimensions is New taking a Dimensions value.
func NewWithDimensions(d Dimensions) (*Grid, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &Grid{
		dims:  d,
		cells: make([]Cell, d.Area()),
		edges: newEdgeOverlay(d),
	}, nil
}

func (g *Grid) Width() int             { return g.dims.Width }
func (g *Grid) Height() int            { return g.dims.Height }
func (g *Grid) Dimensions() Dimensions { return g.dims }

// Len returns width*height.
func (g *Grid) Len() int { return len(g.cells) }

// Cells returns a copy of the cell slice.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Edges returns the boundary overlay. Generation leaves it all open.
func (g *Grid) Edges() *EdgeOverlay { return g.edges }

// IndexToCoordinate converts a linear index into (x, y).
func (g *Grid) IndexToCoordinate(i int) (x, y int) {
	return i % g.dims.Width, i / g.dims.Width
}

// CoordinateToIndex converts (x, y) into a linear index. It is the inverse
// of IndexToCoordinate for every in-bounds coordinate.
func (g *Grid) CoordinateToIndex(x, y int) int {
	return y*g.dims.Width + x
}

// ValidIndex reports whether i addresses a cell.
func (g *Grid) ValidIndex(i int) bool {
	return i >= 0 && i < len(g.cells)
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.dims.Width && y >= 0 && y < g.dims.Height
}

// CellAt returns the cell at index i.
func (g *Grid) CellAt(i int) (Cell, error) {
	if !g.ValidIndex(i) {
		return Cell{}, fmt.Errorf("%w: index %d not in [0, %d)", ErrIndexOutOfRange, i, len(g.cells))
	}
	return g.cells[i], nil
}

// CellAtXY returns the cell at (x, y).
func (g *Grid) CellAtXY(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Cell{}, fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrIndexOutOfRange, x, y, g.dims.Width, g.dims.Height)
	}
	return g.cells[g.CoordinateToIndex(x, y)], nil
}

// SetState overwrites the state of cell i, leaving its alignment alone.
func (g *Grid) SetState(i int, s CellState) error {
	if !g.ValidIndex(i) {
		return fmt.Errorf("%w: index %d not in [0, %d)", ErrIndexOutOfRange, i, len(g.cells))
	}
	g.cells[i].State = s
	return nil
}
