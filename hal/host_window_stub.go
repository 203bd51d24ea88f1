//go:build !cgo

package hal

import "fmt"

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title     string
	Width     int
	Height    int
	Maximized bool
	TPS       int
}

func RunWindow(_ WindowConfig, _ HAL, _ func(HAL) (App, error)) error {
	return fmt.Errorf("window mode: %w without cgo (build with CGO_ENABLED=1 or use -headless)", ErrNotImplemented)
}
