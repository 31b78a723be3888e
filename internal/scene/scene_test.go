package scene

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawnchairsociety/tilemap/internal/grid"
	"github.com/lawnchairsociety/tilemap/internal/mapgen"
)

func fixture(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	require.NoError(t, g.SetState(2, grid.Water))
	require.NoError(t, g.SetState(5, grid.Lock))
	require.NoError(t, g.SetState(7, grid.Grass))
	return g
}

func newBuilder(r *Recorder, view bool) *Builder {
	return &Builder{Spawner: r, Baker: r, Container: r, GenerateView: view}
}

func TestBuildSpawnsObstaclesAndBakes(t *testing.T) {
	r := &Recorder{}
	require.NoError(t, newBuilder(r, true).Build(context.Background(), fixture(t)))

	assert.Equal(t, 1, r.Clears)
	assert.Equal(t, []SpawnRecord{
		{Kind: mapgen.WaterVolume, Position: mapgen.Vec2{X: 2.5, Z: 0.5}},
		{Kind: mapgen.Wall, Position: mapgen.Vec2{X: 2.5, Z: 1.5}},
	}, r.Spawned)

	require.NotNil(t, r.Surface)
	assert.Equal(t, mapgen.Surface{
		Position: mapgen.Vec2{X: 1.5, Z: 1.5},
		Scale:    mapgen.Vec2{X: 3, Z: 3},
	}, *r.Surface)
}

func TestBuildWithoutViewOnlyClears(t *testing.T) {
	r := &Recorder{Spawned: []SpawnRecord{{Kind: mapgen.Wall}}}
	require.NoError(t, newBuilder(r, false).Build(context.Background(), fixture(t)))

	assert.Equal(t, 1, r.Clears)
	assert.Empty(t, r.Spawned)
	assert.Nil(t, r.Surface)
}

func TestBuildReplacesPreviousScene(t *testing.T) {
	r := &Recorder{}
	b := newBuilder(r, true)
	g := fixture(t)

	require.NoError(t, b.Build(context.Background(), g))
	require.NoError(t, b.Build(context.Background(), g))

	assert.Equal(t, 2, r.Clears)
	assert.Len(t, r.Spawned, 2)
	assert.Equal(t, map[mapgen.ObstacleKind]int{mapgen.Wall: 1, mapgen.WaterVolume: 1}, r.CountByKind())
}

type failingSpawner struct{ err error }

func (f failingSpawner) Spawn(context.Context, mapgen.ObstacleKind, mapgen.Vec2) error { return f.err }

func TestBuildSpawnErrorNamesCell(t *testing.T) {
	boom := errors.New("boom")
	r := &Recorder{}
	b := &Builder{Spawner: failingSpawner{err: boom}, Baker: r, GenerateView: true}

	err := b.Build(context.Background(), fixture(t))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "cell 2")
	assert.Nil(t, r.Surface, "surface must not be baked after a failed spawn")
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &Recorder{}
	err := newBuilder(r, true).Build(ctx, fixture(t))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, r.Spawned)
}

func TestBuildNilCollaborators(t *testing.T) {
	b := &Builder{GenerateView: true}
	assert.NoError(t, b.Build(context.Background(), fixture(t)))
}
