package scene

import (
	"context"

	"github.com/lawnchairsociety/tilemap/internal/mapgen"
)

// SpawnRecord is one recorded Spawn call.
type SpawnRecord struct {
	Kind     mapgen.ObstacleKind
	Position mapgen.Vec2
}

// Recorder keeps everything it is asked to build in memory. It implements
// ObstacleSpawner, SurfaceBaker and Container.
type Recorder struct {
	Spawned []SpawnRecord
	Surface *mapgen.Surface
	Clears  int
}

func (r *Recorder) Spawn(_ context.Context, kind mapgen.ObstacleKind, pos mapgen.Vec2) error {
	r.Spawned = append(r.Spawned, SpawnRecord{Kind: kind, Position: pos})
	return nil
}

func (r *Recorder) Bake(_ context.Context, surface mapgen.Surface) error {
	r.Surface = &surface
	return nil
}

func (r *Recorder) Clear(context.Context) error {
	r.Spawned = nil
	r.Surface = nil
	r.Clears++
	return nil
}

// CountByKind returns how many obstacles of each kind were spawned.
func (r *Recorder) CountByKind() map[mapgen.ObstacleKind]int {
	counts := make(map[mapgen.ObstacleKind]int)
	for _, s := range r.Spawned {
		counts[s.Kind]++
	}
	return counts
}
