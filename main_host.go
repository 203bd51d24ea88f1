package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"umapview/app"
	"umapview/hal"
	"umapview/internal/buildinfo"
	"umapview/internal/config"
	"umapview/viewer/billboard"
	"umapview/viewer/points"

	"gonum.org/v1/gonum/spatial/r3"
)

type options struct {
	configPath string
	image      string
	points     string
	headless   bool
	hz         int
	ticks      uint64
	hold       string
	snapshot   string
	size       string
	debug      bool
	logLevel   string
}

func main() {
	var o options
	flag.StringVar(&o.configPath, "config", "", "TOML config file.")
	flag.StringVar(&o.image, "image", "", "Billboard image (overrides config).")
	flag.StringVar(&o.points, "points", "", "Built-in point set name or point file (overrides config).")
	flag.BoolVar(&o.headless, "headless", false, "Run without a window.")
	flag.IntVar(&o.hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&o.ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&o.hold, "hold", "", "Comma-separated keys held down in headless mode, e.g. W,Left.")
	flag.StringVar(&o.snapshot, "snapshot", "", "Write the last headless frame to this PNG file.")
	flag.StringVar(&o.size, "size", "", "Headless frame size as WxH (default from config).")
	flag.BoolVar(&o.debug, "debug", false, "Start with the debug overlay on.")
	flag.StringVar(&o.logLevel, "log-level", "info", "debug|info|warn|error.")
	flag.Parse()

	level, err := hal.ParseLevel(o.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level %q\n", o.logLevel)
		os.Exit(2)
	}
	log := hal.NewLogger(os.Stderr, level)
	log.Info("umapview starting", "build", buildinfo.String())

	cfg, err := loadConfig(o)
	if err != nil {
		log.Error("startup failed", "err", err)
		os.Exit(1)
	}
	appCfg, err := buildAppConfig(cfg, o)
	if err != nil {
		log.Error("startup failed", "err", err)
		os.Exit(1)
	}
	newApp := func(h hal.HAL) (hal.App, error) {
		v, err := app.New(h, appCfg)
		if err != nil {
			return nil, err
		}
		return app.Guard(v, h.Logger()), nil
	}

	if o.headless {
		hcfg := hal.HeadlessConfig{
			Hz:       o.hz,
			Ticks:    o.ticks,
			Width:    cfg.Window.Width,
			Height:   cfg.Window.Height,
			Snapshot: o.snapshot,
		}
		if o.size != "" {
			if hcfg.Width, hcfg.Height, err = parseSize(o.size); err != nil {
				log.Error("startup failed", "err", err)
				os.Exit(1)
			}
		}
		held, err := parseHold(o.hold)
		if err != nil {
			log.Error("startup failed", "err", err)
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		h := hal.NewWithKeyboard(log, hal.NewVirtualKeyboard(held...))
		if err := hal.RunHeadless(ctx, h, newApp, hcfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			log.Error("headless run failed", "err", err)
			os.Exit(1)
		}
		return
	}

	wcfg := hal.WindowConfig{
		Title:     "umapview",
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Maximized: cfg.Window.Maximized,
		TPS:       cfg.Window.TPS,
	}
	if err := hal.RunWindow(wcfg, hal.New(log), newApp); err != nil {
		log.Error("window run failed", "err", err)
		os.Exit(1)
	}
}

func loadConfig(o options) (config.Config, error) {
	if o.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(o.configPath)
}

// buildAppConfig resolves the texture and point set and applies flag
// overrides on top of cfg.
func buildAppConfig(cfg config.Config, o options) (app.Config, error) {
	if o.image != "" {
		cfg.Image = o.image
	}
	if o.debug {
		cfg.View.Debug = true
	}

	bindings, err := cfg.Bindings()
	if err != nil {
		return app.Config{}, err
	}

	pts, err := cfg.PointSet()
	if o.points != "" {
		pts, err = resolvePoints(o.points)
	}
	if err != nil {
		return app.Config{}, err
	}

	var tex image.Image
	if cfg.Image != "" {
		if tex, err = billboard.Load(cfg.Image, cfg.TextureSize); err != nil {
			return app.Config{}, err
		}
	}

	return app.Config{
		Settings: app.Settings{
			ImageScale: cfg.View.ImageScale,
			Fov:        cfg.View.Fov,
			TurnSpeed:  cfg.View.TurnSpeed,
			MoveSpeed:  cfg.View.MoveSpeed,
		},
		Bindings: bindings,
		Start:    cfg.Start(),
		Points:   pts,
		Texture:  tex,
		Debug:    cfg.View.Debug,
	}, nil
}

// resolvePoints accepts a built-in set name or a point file path.
func resolvePoints(s string) ([]r3.Vec, error) {
	if pts, err := points.ByName(s); err == nil {
		return pts, nil
	}
	if _, err := os.Stat(s); err != nil {
		return nil, fmt.Errorf("points %q: not a built-in set (%s) and not a file", s, strings.Join(points.Names(), ", "))
	}
	return config.LoadPoints(s)
}

func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want WxH", s)
	}
	w, err := strconv.Atoi(strings.TrimSpace(ws))
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(hs))
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size %q: dimensions must be positive", s)
	}
	return w, h, nil
}

func parseHold(s string) ([]hal.KeyCode, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var keys []hal.KeyCode
	for _, name := range strings.Split(s, ",") {
		k, err := hal.ParseKeyCode(name)
		if err != nil {
			return nil, fmt.Errorf("-hold: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}
