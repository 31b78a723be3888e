//go:build ebiten

package viewer

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lawnchairsociety/tilemap/internal/debugview"
	"github.com/lawnchairsociety/tilemap/internal/grid"
	"github.com/lawnchairsociety/tilemap/internal/logger"
	"github.com/lawnchairsociety/tilemap/internal/mapgen"
)

var background = color.RGBA{0x40, 0x40, 0x48, 0xff}

// Game adapts a generated grid to the ebiten.Game interface.
type Game struct {
	opts Options
	grid *grid.Grid
}

// New generates the first grid and returns a viewer for it.
func New(opts Options) (*Game, error) {
	if opts.Scale <= 0 {
		opts.Scale = 16
	}
	g := &Game{opts: opts}
	if err := g.regenerate(opts.Seed); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) regenerate(seed int64) error {
	m, err := mapgen.Regenerate(g.opts.Dimensions, mapgen.NewRand(seed))
	if err != nil {
		return err
	}
	g.grid = m
	g.opts.Seed = seed
	logger.Info("Viewer regenerated map", "seed", seed)
	return nil
}

// Update handles input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.opts.ShowGrid = !g.opts.ShowGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return g.regenerate(time.Now().UnixNano())
	}
	return nil
}

// Draw renders obstacle cells filled and, when enabled, the inset outline
// of every cell in its state color.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	s := float32(g.opts.Scale)

	for i, kind := range mapgen.Obstacles(g.grid) {
		x, y := g.grid.IndexToCoordinate(i)
		c := debugview.ColorFor(grid.Lock)
		if kind == mapgen.WaterVolume {
			c = debugview.ColorFor(grid.Water)
		}
		fill := color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0x80}
		sx, sy := g.toScreen(mapgen.Vec2{X: float64(x), Z: float64(y + 1)})
		vector.DrawFilledRect(screen, sx, sy, s, s, fill, false)
	}

	if g.opts.ShowGrid {
		cells := g.grid.Cells()
		for i, sides := range debugview.Outlines(g.grid, g.opts.Inset) {
			c := debugview.ColorFor(cells[i].State)
			for _, seg := range sides {
				x0, y0 := g.toScreen(seg.From)
				x1, y1 := g.toScreen(seg.To)
				vector.StrokeLine(screen, x0, y0, x1, y1, 1, c, false)
			}
		}
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("seed %d  [R]egen [G]rid [Q]uit", g.opts.Seed))
}

// toScreen flips z so that +z points up on screen.
func (g *Game) toScreen(v mapgen.Vec2) (float32, float32) {
	s := float64(g.opts.Scale)
	return float32(v.X * s), float32((float64(g.grid.Height()) - v.Z) * s)
}

// Layout returns the logical screen size.
func (g *Game) Layout(int, int) (int, int) {
	return g.grid.Width() * g.opts.Scale, g.grid.Height() * g.opts.Scale
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	game, err := New(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle("tilemap")
	ebiten.SetWindowSize(game.Layout(0, 0))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
