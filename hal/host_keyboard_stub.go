//go:build !cgo

package hal

type hostKeyboard struct{}

func newHostKeyboard() *hostKeyboard { return &hostKeyboard{} }

// No keyboard support without the window backend.
func (hostKeyboard) Pressed(KeyCode) bool     { return false }
func (hostKeyboard) JustPressed(KeyCode) bool { return false }
