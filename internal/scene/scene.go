// Package scene hands a generated grid to the collaborators that turn it
// into world geometry: an obstacle spawner and a navigation surface baker.
package scene

import (
	"context"
	"fmt"

	"github.com/lawnchairsociety/tilemap/internal/grid"
	"github.com/lawnchairsociety/tilemap/internal/logger"
	"github.com/lawnchairsociety/tilemap/internal/mapgen"
)

// ObstacleSpawner instantiates obstacle geometry at a world position.
type ObstacleSpawner interface {
	Spawn(ctx context.Context, kind mapgen.ObstacleKind, pos mapgen.Vec2) error
}

// SurfaceBaker builds the navigation surface from its transform.
type SurfaceBaker interface {
	Bake(ctx context.Context, surface mapgen.Surface) error
}

// Container discards whatever a previous Build produced.
type Container interface {
	Clear(ctx context.Context) error
}

// Builder drives the collaborators for one grid. Nil collaborators are
// skipped.
type Builder struct {
	Spawner      ObstacleSpawner
	Baker        SurfaceBaker
	Container    Container
	GenerateView bool
}

// Build clears the container and, when GenerateView is set, spawns every
// obstacle in index order and then bakes the surface. The grid is only read.
func (b *Builder) Build(ctx context.Context, g *grid.Grid) error {
	if b.Container != nil {
		if err := b.Container.Clear(ctx); err != nil {
			return fmt.Errorf("clear scene: %w", err)
		}
	}

	if !b.GenerateView {
		logger.Debug("View generation disabled, scene left empty")
		return nil
	}

	spawned := 0
	if b.Spawner != nil {
		for i, kind := range mapgen.Obstacles(g) {
			if err := ctx.Err(); err != nil {
				return err
			}
			pos, err := mapgen.CellWorldPosition(g, i)
			if err != nil {
				return err
			}
			if err := b.Spawner.Spawn(ctx, kind, pos); err != nil {
				return fmt.Errorf("spawn %s at cell %d: %w", kind, i, err)
			}
			spawned++
		}
	}

	if b.Baker != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := b.Baker.Bake(ctx, mapgen.SurfacePlacement(g)); err != nil {
			return fmt.Errorf("bake surface: %w", err)
		}
	}

	logger.Debug("Scene built", "obstacles", spawned)
	return nil
}
