package hal

import (
	"context"
	"fmt"
	"time"

	"github.com/anthonynsimon/bild/imgio"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz     int
	Ticks  uint64
	Width  int
	Height int
	// Snapshot, if set, is a PNG path the last frame is written to.
	Snapshot string
}

type ticker interface {
	Tick()
}

// RunHeadless drives the app without opening a window, drawing into a Raster.
func RunHeadless(ctx context.Context, h HAL, newApp func(HAL) (App, error), cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 640, 480
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	a, err := newApp(h)
	if err != nil {
		return err
	}
	raster := NewRaster(cfg.Width, cfg.Height)

	t := time.NewTicker(d)
	defer t.Stop()

	log := h.Logger()
	log.Info("headless starting", "hz", cfg.Hz, "ticks", cfg.Ticks, "size", [2]int{cfg.Width, cfg.Height})

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := a.Update(); err != nil {
				return err
			}
			if tk, ok := h.Input().Keyboard().(ticker); ok {
				tk.Tick()
			}
			raster.Clear()
			a.Draw(raster)
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				log.Info("headless done", "ticks", tick, "draws", raster.Draws())
				if cfg.Snapshot != "" {
					if err := imgio.Save(cfg.Snapshot, raster.Image(), imgio.PNGEncoder()); err != nil {
						return fmt.Errorf("snapshot: %w", err)
					}
					log.Info("snapshot written", "path", cfg.Snapshot)
				}
				return nil
			}
		}
	}
}
