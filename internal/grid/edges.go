package grid

import "fmt"

// EdgeOverlay flags impassable boundaries between neighbouring cells,
// independently of cell state.
//
// Horizontal holds the boundary between (x, y) and (x, y+1) at index
// y*width + x, so it has width*(height-1) entries. Vertical holds the
// boundary between (x, y) and (x+1, y) at index y*(width-1) + x, so it has
// (width-1)*height entries.
type EdgeOverlay struct {
	dims       Dimensions
	Horizontal []bool
	Vertical   []bool
}

func newEdgeOverlay(d Dimensions) *EdgeOverlay {
	return &EdgeOverlay{
		dims:       d,
		Horizontal: make([]bool, d.Width*(d.Height-1)),
		Vertical:   make([]bool, (d.Width-1)*d.Height),
	}
}

// edgeSlot resolves the boundary shared by (ax, ay) and (bx, by).
func (e *EdgeOverlay) edgeSlot(ax, ay, bx, by int) (*bool, error) {
	w, h := e.dims.Width, e.dims.Height
	for _, p := range [][2]int{{ax, ay}, {bx, by}} {
		if p[0] < 0 || p[0] >= w || p[1] < 0 || p[1] >= h {
			return nil, fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrIndexOutOfRange, p[0], p[1], w, h)
		}
	}

	// Order the pair so a is the lower/left cell
	if by < ay || bx < ax {
		ax, ay, bx, by = bx, by, ax, ay
	}

	switch {
	case ax == bx && by == ay+1:
		return &e.Horizontal[ay*w+ax], nil
	case ay == by && bx == ax+1:
		return &e.Vertical[ay*(w-1)+ax], nil
	default:
		return nil, fmt.Errorf("%w: (%d, %d) and (%d, %d)", ErrNotAdjacent, ax, ay, bx, by)
	}
}

// Blocked reports whether the boundary between two adjacent cells is flagged.
func (e *EdgeOverlay) Blocked(ax, ay, bx, by int) (bool, error) {
	slot, err := e.edgeSlot(ax, ay, bx, by)
	if err != nil {
		return false, err
	}
	return *slot, nil
}

// SetBlocked flags or clears the boundary between two adjacent cells.
func (e *EdgeOverlay) SetBlocked(ax, ay, bx, by int, blocked bool) error {
	slot, err := e.edgeSlot(ax, ay, bx, by)
	if err != nil {
		return err
	}
	*slot = blocked
	return nil
}

// Count returns how many boundaries are flagged.
func (e *EdgeOverlay) Count() int {
	n := 0
	for _, b := range e.Horizontal {
		if b {
			n++
		}
	}
	for _, b := range e.Vertical {
		if b {
			n++
		}
	}
	return n
}
