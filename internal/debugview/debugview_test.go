package debugview

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawnchairsociety/tilemap/internal/grid"
	"github.com/lawnchairsociety/tilemap/internal/mapgen"
)

func TestColorFor(t *testing.T) {
	tests := []struct {
		state grid.CellState
		want  color.RGBA
	}{
		{grid.Lock, color.RGBA{0, 0, 0, 255}},
		{grid.Grass, color.RGBA{0, 255, 0, 255}},
		{grid.Water, color.RGBA{0, 0, 255, 255}},
		{grid.Special, color.RGBA{255, 0, 255, 255}},
		{grid.Normal, color.RGBA{255, 255, 255, 255}},
		{grid.CellState(42), color.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ColorFor(tt.state), "%s", tt.state)
	}
}

func TestOutline(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	sides, err := Outline(g, 4, 0.25)
	require.NoError(t, err)

	v := func(x, z float64) mapgen.Vec2 { return mapgen.Vec2{X: x, Z: z} }
	assert.Equal(t, [4]Segment{
		{From: v(1.25, 1.25), To: v(1.75, 1.25)},
		{From: v(1.75, 1.25), To: v(1.75, 1.75)},
		{From: v(1.75, 1.75), To: v(1.25, 1.75)},
		{From: v(1.25, 1.75), To: v(1.25, 1.25)},
	}, sides)

	// Each side ends where the next starts
	for k := range sides {
		assert.Equal(t, sides[k].To, sides[(k+1)%4].From)
	}
}

func TestOutlineZeroInsetTracesCell(t *testing.T) {
	g, err := grid.New(2, 1)
	require.NoError(t, err)

	sides, err := Outline(g, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, mapgen.Vec2{X: 1, Z: 0}, sides[0].From)
	assert.Equal(t, mapgen.Vec2{X: 2, Z: 1}, sides[2].From)
}

func TestOutlineRejects(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	_, err = Outline(g, 0, 0.6)
	assert.ErrorIs(t, err, ErrInvalidInset)

	_, err = Outline(g, 0, -0.01)
	assert.ErrorIs(t, err, ErrInvalidInset)

	_, err = Outline(g, 4, 0.1)
	assert.ErrorIs(t, err, grid.ErrIndexOutOfRange)
}

func TestOutlinesCoversGrid(t *testing.T) {
	g, err := grid.New(4, 3)
	require.NoError(t, err)

	n := 0
	for i, sides := range Outlines(g, 0.1) {
		assert.Equal(t, n, i)
		assert.NotEqual(t, sides[0].From, sides[0].To)
		n++
	}
	assert.Equal(t, 12, n)

	for range Outlines(g, 0.9) {
		t.Fatal("invalid inset must yield nothing")
	}
}

func TestRenderASCII(t *testing.T) {
	g, err := grid.New(3, 2)
	require.NoError(t, err)
	require.NoError(t, g.SetState(0, grid.Lock))
	require.NoError(t, g.SetState(2, grid.Water))
	require.NoError(t, g.SetState(4, grid.Grass))
	require.NoError(t, g.SetState(5, grid.Special))

	var buf bytes.Buffer
	require.NoError(t, RenderASCII(&buf, g, ASCIIOptions{}))
	assert.Equal(t, ".\"*\n#.~\n", buf.String())
}

func TestRenderASCIIAxesAndLegend(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderASCII(&buf, g, ASCIIOptions{Axes: true, Legend: true}))

	out := buf.String()
	assert.Contains(t, out, " 1 ..\n 0 ..\n   01\n")
	assert.Contains(t, out, "[#] lock")
	assert.Contains(t, out, "[~] water")
}
