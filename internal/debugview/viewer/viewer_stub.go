//go:build !ebiten

package viewer

// Run reports that the GUI is unavailable.
func Run(Options) error {
	return ErrNoGUI
}
