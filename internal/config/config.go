package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/tilemap/internal/grid"
)

var ErrInvalidConfig = errors.New("config: invalid")

// MapConfig holds every setting consumed by map generation and its views.
type MapConfig struct {
	Map   GridConfig  `yaml:"map"`
	View  ViewConfig  `yaml:"view"`
	Debug DebugConfig `yaml:"debug"`
}

// GridConfig holds the generated grid's size and seed.
type GridConfig struct {
	// Width and Height are in cells, each in [1, 50].
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Seed for the random source. 0 picks a time-based seed.
	Seed int64 `yaml:"seed"`
}

// ViewConfig controls derived geometry.
type ViewConfig struct {
	// GenerateView toggles obstacle spawning and surface baking.
	GenerateView bool `yaml:"generate_view"`
}

// DebugConfig controls the debug grid overlay.
type DebugConfig struct {
	ShowGrid bool `yaml:"show_grid"`

	// Inset is how far each cell marker is drawn inside the cell edges,
	// as a fraction of the cell size in [0, 0.5].
	Inset float64 `yaml:"inset"`
}

// DefaultConfig returns a MapConfig for a 20x20 map with views and the
// debug grid enabled.
func DefaultConfig() *MapConfig {
	return &MapConfig{
		Map: GridConfig{
			Width:  20,
			Height: 20,
		},
		View: ViewConfig{
			GenerateView: true,
		},
		Debug: DebugConfig{
			ShowGrid: true,
			Inset:    0.1,
		},
	}
}

// LoadConfig loads map configuration from a YAML file and applies
// TILEMAP_* environment overrides.
// If the file doesn't exist, the defaults are used.
func LoadConfig(path string) (*MapConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, applyEnv(config)
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}

	return config, applyEnv(config)
}

func applyEnv(config *MapConfig) error {
	for _, v := range []struct {
		name string
		dst  *int
	}{
		{"TILEMAP_WIDTH", &config.Map.Width},
		{"TILEMAP_HEIGHT", &config.Map.Height},
	} {
		raw := os.Getenv(v.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, v.name, raw)
		}
		*v.dst = n
	}

	if raw := os.Getenv("TILEMAP_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: TILEMAP_SEED=%q is not an integer", ErrInvalidConfig, raw)
		}
		config.Map.Seed = seed
	}

	return nil
}

// Dimensions returns the configured grid size.
func (c *MapConfig) Dimensions() grid.Dimensions {
	return grid.Dimensions{Width: c.Map.Width, Height: c.Map.Height}
}

// Validate rejects out-of-range settings. Values are never clamped.
func (c *MapConfig) Validate() error {
	if err := c.Dimensions().Validate(); err != nil {
		return fmt.Errorf("%w: map: %w", ErrInvalidConfig, err)
	}
	if c.Debug.Inset < 0 || c.Debug.Inset > 0.5 {
		return fmt.Errorf("%w: debug.inset %g not in [0, 0.5]", ErrInvalidConfig, c.Debug.Inset)
	}
	return nil
}
