package mapgen

import (
	"testing"

	"github.com/lawnchairsociety/tilemap/internal/grid"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig(42)

	if cfg.Width != 20 || cfg.Height != 20 {
		t.Errorf("DefaultConfig size = %dx%d, want 20x20", cfg.Width, cfg.Height)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
}

func TestGeneratorGenerate(t *testing.T) {
	config := &Config{Width: 10, Height: 7, Seed: 42}

	result, err := NewGenerator(config).Generate()
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	if result.Grid.Len() != 70 {
		t.Errorf("Grid.Len() = %d, want 70", result.Grid.Len())
	}

	want := Surface{Position: Vec2{5, 3.5}, Scale: Vec2{10, 7}}
	if result.Surface != want {
		t.Errorf("Surface = %+v, want %+v", result.Surface, want)
	}

	// Every placement sits on a Lock or Water cell at its centre
	for _, p := range result.Placements {
		cell, err := result.Grid.CellAt(p.Index)
		if err != nil {
			t.Fatalf("placement index %d: %v", p.Index, err)
		}
		kind, ok := KindFor(cell.State)
		if !ok || kind != p.Kind {
			t.Errorf("placement %d kind %s on %s cell", p.Index, p.Kind, cell.State)
		}
		x, y := result.Grid.IndexToCoordinate(p.Index)
		if p.Position != (Vec2{float64(x) + 0.5, float64(y) + 0.5}) {
			t.Errorf("placement %d position %+v", p.Index, p.Position)
		}
	}

	counts := result.Counts()
	if counts[grid.Lock]+counts[grid.Water] != len(result.Placements) {
		t.Errorf("placements = %d, lock+water = %d", len(result.Placements), counts[grid.Lock]+counts[grid.Water])
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	if total != 70 {
		t.Errorf("Counts() total = %d, want 70", total)
	}
}

func TestGeneratorSameSeed(t *testing.T) {
	config := &Config{Width: 8, Height: 8, Seed: 1234}

	a, err := NewGenerator(config).Generate()
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewGenerator(config).Generate()
	if err != nil {
		t.Fatal(err)
	}

	ca, cb := a.Grid.Cells(), b.Grid.Cells()
	for i := range ca {
		if ca[i] != cb[i] {
			t.Fatalf("cell %d differs: %v vs %v", i, ca[i], cb[i])
		}
	}
}

func TestGeneratorInvalidSize(t *testing.T) {
	_, err := NewGenerator(&Config{Width: 0, Height: 10}).Generate()
	if err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestGeneratorWithRand(t *testing.T) {
	rng := &scriptedRand{values: []int{1}}
	result, err := NewGeneratorWithRand(&Config{Width: 2, Height: 2}, rng).Generate()
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Placements) != 4 {
		t.Errorf("Placements = %d, want 4 walls", len(result.Placements))
	}
	for _, p := range result.Placements {
		if p.Kind != Wall {
			t.Errorf("placement %d kind = %s, want wall", p.Index, p.Kind)
		}
	}
}
