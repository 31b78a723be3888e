package mapgen

import (
	"iter"

	"github.com/lawnchairsociety/tilemap/internal/grid"
)

// ObstacleKind is the solid geometry placed on a cell.
type ObstacleKind int

const (
	Wall ObstacleKind = iota
	WaterVolume
)

// String returns the string representation of an ObstacleKind
func (k ObstacleKind) String() string {
	switch k {
	case Wall:
		return "wall"
	case WaterVolume:
		return "water"
	default:
		return "unknown"
	}
}

// obstacleKinds maps geometry-bearing states to what gets placed on them.
// States missing from the table get no geometry.
var obstacleKinds = map[grid.CellState]ObstacleKind{
	grid.Lock:  Wall,
	grid.Water: WaterVolume,
}

// KindFor returns the obstacle placed on cells of the given state.
func KindFor(s grid.CellState) (ObstacleKind, bool) {
	k, ok := obstacleKinds[s]
	return k, ok
}

// ObstacleCellsFor yields, in ascending order, the index of every cell whose
// state places the given kind. The sequence reads the grid each time it is
// ranged over.
func ObstacleCellsFor(g *grid.Grid, kind ObstacleKind) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, k := range Obstacles(g) {
			if k != kind {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}

// Obstacles yields every geometry-bearing cell with its kind, in ascending
// index order.
func Obstacles(g *grid.Grid) iter.Seq2[int, ObstacleKind] {
	return func(yield func(int, ObstacleKind) bool) {
		for i := 0; i < g.Len(); i++ {
			c, err := g.CellAt(i)
			if err != nil {
				return
			}
			k, ok := KindFor(c.State)
			if !ok {
				continue
			}
			if !yield(i, k) {
				return
			}
		}
	}
}
