package mapgen

import (
	"fmt"

	"github.com/lawnchairsociety/tilemap/internal/grid"
	"github.com/lawnchairsociety/tilemap/internal/logger"
)

// Config contains parameters for map generation
type Config struct {
	Width  int   // Cells along x (1-50)
	Height int   // Cells along y/z (1-50)
	Seed   int64 // Seed for the default random source
}

// DefaultConfig returns a 20x20 map config for the given seed
func DefaultConfig(seed int64) *Config {
	return &Config{Width: 20, Height: 20, Seed: seed}
}

// Dimensions returns the configured grid size.
func (c *Config) Dimensions() grid.Dimensions {
	return grid.Dimensions{Width: c.Width, Height: c.Height}
}

// Placement is one obstacle to instantiate.
type Placement struct {
	Index    int
	Kind     ObstacleKind
	Position Vec2
}

// Result is the output of a generation pass
type Result struct {
	Seed       int64
	Grid       *grid.Grid
	Surface    Surface
	Placements []Placement
}

// Counts returns how many cells hold each state.
func (r *Result) Counts() map[grid.CellState]int {
	counts := make(map[grid.CellState]int, len(grid.AllStates()))
	for _, c := range r.Grid.Cells() {
		counts[c.State]++
	}
	return counts
}

// Generator runs a single generation pass from a config
type Generator struct {
	config *Config
	rng    Rand
}

// NewGenerator creates a generator seeded from config.Seed
func NewGenerator(config *Config) *Generator {
	return &Generator{
		config: config,
		rng:    NewRand(config.Seed),
	}
}

// NewGeneratorWithRand creates a generator that draws from rng instead of
// config.Seed.
func NewGeneratorWithRand(config *Config, rng Rand) *Generator {
	return &Generator{config: config, rng: rng}
}

// Generate builds a new grid and derives its surface and obstacle placements.
func (g *Generator) Generate() (*Result, error) {
	m, err := Regenerate(g.config.Dimensions(), g.rng)
	if err != nil {
		return nil, fmt.Errorf("generate map: %w", err)
	}

	result := &Result{
		Seed:    g.config.Seed,
		Grid:    m,
		Surface: SurfacePlacement(m),
	}

	for i, kind := range Obstacles(m) {
		pos, err := CellWorldPosition(m, i)
		if err != nil {
			return nil, fmt.Errorf("place %s at cell %d: %w", kind, i, err)
		}
		result.Placements = append(result.Placements, Placement{Index: i, Kind: kind, Position: pos})
	}

	logger.Info("Map generated",
		"width", m.Width(),
		"height", m.Height(),
		"seed", g.config.Seed,
		"obstacles", len(result.Placements))

	counts := result.Counts()
	for _, s := range grid.AllStates() {
		logger.Debug("State count", "state", s.String(), "cells", counts[s])
	}

	return result, nil
}
