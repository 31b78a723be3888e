package mapgen

import (
	"github.com/lawnchairsociety/tilemap/internal/grid"
)

// Vec2 is a point on the ground plane. Z follows the grid's y axis.
type Vec2 struct {
	X, Z float64
}

// Surface is the transform of the single navigable plane spanning the grid.
type Surface struct {
	Position Vec2
	Scale    Vec2
}

// SurfacePlacement centres a surface of one world unit per cell over the
// grid. The position is computed with integer division and then shifted by
// half a unit on each axis whose dimension is odd.
func SurfacePlacement(g *grid.Grid) Surface {
	w, h := g.Width(), g.Height()

	pos := Vec2{X: float64(w / 2), Z: float64(h / 2)}
	if w%2 != 0 {
		pos.X += 0.5
	}
	if h%2 != 0 {
		pos.Z += 0.5
	}

	return Surface{
		Position: pos,
		Scale:    Vec2{X: float64(w), Z: float64(h)},
	}
}

// CellWorldPosition returns the centre of cell i. Cell (x, y) covers
// [x, x+1) x [y, y+1) in world units.
func CellWorldPosition(g *grid.Grid, i int) (Vec2, error) {
	if _, err := g.CellAt(i); err != nil {
		return Vec2{}, err
	}
	x, y := g.IndexToCoordinate(i)
	return Vec2{X: float64(x) + 0.5, Z: float64(y) + 0.5}, nil
}
