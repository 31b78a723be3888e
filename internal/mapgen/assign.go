package mapgen

import (
	"github.com/lawnchairsociety/tilemap/internal/grid"
)

// AssignRandomStates overwrites the state of every cell with an independent
// uniform draw from [grid.FirstState, grid.LastState]. Alignments are left
// untouched.
func AssignRandomStates(g *grid.Grid, rng Rand) {
	span := int(grid.LastState-grid.FirstState) + 1
	for i := 0; i < g.Len(); i++ {
		// i is always in range, SetState cannot fail here
		_ = g.SetState(i, grid.FirstState+grid.CellState(rng.IntN(span)))
	}
}

// Regenerate allocates a fresh grid and assigns random states to it. Any
// previous grid is left to the caller to discard.
func Regenerate(dims grid.Dimensions, rng Rand) (*grid.Grid, error) {
	g, err := grid.NewWithDimensions(dims)
	if err != nil {
		return nil, err
	}
	AssignRandomStates(g, rng)
	return g, nil
}
