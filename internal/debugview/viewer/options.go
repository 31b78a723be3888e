// Package viewer draws a generated grid in a window using the debug outline
// primitives. The window needs the ebiten build tag.
package viewer

import (
	"errors"

	"github.com/lawnchairsociety/tilemap/internal/grid"
)

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("viewer: built without the ebiten tag")

// Options configures the viewer window.
type Options struct {
	Dimensions grid.Dimensions
	Seed       int64
	Inset      float64
	ShowGrid   bool
	Scale      int // Pixels per cell
}
