package grid

import "fmt"

// CellState is the terrain or obstacle kind of a cell.
//
// The declaration order defines the inclusive range used by random
// generation (FirstState..LastState). It carries no other meaning and
// states must not be compared with < or >.
type CellState int

const (
	Normal  CellState = iota // Walkable ground (default)
	Lock                     // Solid block
	Water                    // Water volume
	Grass                    // Cosmetic
	Special                  // Reserved
)

const (
	FirstState = Normal
	LastState  = Special
)

// String returns the string representation of a CellState
func (s CellState) String() string {
	switch s {
	case Normal:
		return "normal"
	case Lock:
		return "lock"
	case Water:
		return "water"
	case Grass:
		return "grass"
	case Special:
		return "special"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the declared states.
func (s CellState) Valid() bool {
	return s >= FirstState && s <= LastState
}

// ParseCellState converts a name produced by String back into a CellState.
func ParseCellState(name string) (CellState, error) {
	for _, s := range AllStates() {
		if s.String() == name {
			return s, nil
		}
	}
	return Normal, fmt.Errorf("grid: unknown cell state %q", name)
}

// AllStates returns every cell state in declaration order
func AllStates() []CellState {
	return []CellState{Normal, Lock, Water, Grass, Special}
}

// Alignment tags which side owns or occupies a cell.
type Alignment int

const (
	Neutral Alignment = iota
	IA                // AI controlled
	Player
)

// String returns the string representation of an Alignment
func (a Alignment) String() string {
	switch a {
	case Neutral:
		return "neutral"
	case IA:
		return "ia"
	case Player:
		return "player"
	default:
		return "unknown"
	}
}

// Cell is a single grid unit. The zero value is a neutral Normal cell.
type Cell struct {
	State     CellState
	Alignment Alignment
}
