package app

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"

	"umapview/hal"
)

// PanicError is returned from Update when the wrapped app panicked.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string { return fmt.Sprintf("panic: %v", e.Value) }

// Guard wraps a so that a panic in Update stops the runner with a
// *PanicError, and a panic in Draw replaces the frame with the panic text.
func Guard(a hal.App, log *slog.Logger) hal.App {
	if log == nil {
		log = slog.Default()
	}
	return &guarded{app: a, log: log}
}

type guarded struct {
	app    hal.App
	log    *slog.Logger
	failed *PanicError
}

func (g *guarded) Update() (err error) {
	if g.failed != nil {
		return g.failed
	}
	defer func() {
		if r := recover(); r != nil {
			g.fail("update", r)
			err = g.failed
		}
	}()
	return g.app.Update()
}

func (g *guarded) Draw(d hal.Display) {
	if g.failed != nil {
		drawPanic(d, g.failed)
		return
	}
	defer func() {
		if r := recover(); r != nil {
			g.fail("draw", r)
			drawPanic(d, g.failed)
		}
	}()
	g.app.Draw(d)
}

func (g *guarded) fail(where string, r any) {
	g.failed = &PanicError{Value: r, Stack: debug.Stack()}
	g.log.Error("viewer panic", "in", where, "panic", r)
	for _, line := range strings.Split(string(g.failed.Stack), "\n") {
		if line != "" {
			g.log.Debug(line)
		}
	}
}

func drawPanic(d hal.Display, p *PanicError) {
	_, h := d.Size()
	lines := []string{"umapview panic:", fmt.Sprint(p.Value), ""}
	lines = append(lines, strings.Split(string(p.Stack), "\n")...)
	for i, line := range lines {
		y := 4 + i*lineHeight
		if h > 0 && y+lineHeight > h {
			break
		}
		d.DrawText(4, y, strings.ReplaceAll(line, "\t", "  "))
	}
}
