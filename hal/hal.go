package hal

import (
	"errors"
	"image"
	"log/slog"
)

// ErrNotImplemented is returned by backends missing from this build.
var ErrNotImplemented = errors.New("not implemented")

// Display is the drawing surface for one frame.
//
// Coordinates are in pixels with the origin at the top-left corner.
type Display interface {
	Size() (w, h int)
	// DrawImage draws img stretched to the rectangle (x, y, w, h).
	DrawImage(img image.Image, x, y, w, h float64)
	DrawText(x, y int, s string)
}

// KeyState reports the held state of keys for the current tick.
type KeyState interface {
	Pressed(k KeyCode) bool
	JustPressed(k KeyCode) bool
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() KeyState
}

// HAL provides the only contact point between the viewer and the outside world.
type HAL interface {
	Logger() *slog.Logger
	Input() Input
}

// App is driven by a runner: Update once per tick, Draw once per frame.
//
// The Display passed to Draw is only valid for the duration of the call.
type App interface {
	Update() error
	Draw(d Display)
}
