// Package config loads the viewer's TOML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"umapview/hal"
	"umapview/viewer/camera"
	"umapview/viewer/controls"
	"umapview/viewer/points"

	"github.com/pelletier/go-toml/v2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Config is the on-disk configuration. Zero fields in a file keep their
// defaults.
type Config struct {
	// Image is the billboard texture. Empty means a generated placeholder.
	Image       string `toml:"image,omitempty"`
	TextureSize int    `toml:"texture_size"`
	// Points names a built-in set; ignored when Point entries are present.
	Points string       `toml:"points,omitempty"`
	Point  []PointEntry `toml:"point,omitempty"`

	View   View   `toml:"view"`
	Camera Camera `toml:"camera"`
	Window Window `toml:"window"`
	// Keys maps action names to key names, e.g. move_up = "Space".
	Keys map[string]string `toml:"keys,omitempty"`
}

type View struct {
	ImageScale float64 `toml:"image_scale"`
	Fov        float64 `toml:"fov"`
	TurnSpeed  float64 `toml:"turn_speed"`
	MoveSpeed  float64 `toml:"move_speed"`
	Debug      bool    `toml:"debug"`
}

type Camera struct {
	Start [3]float64 `toml:"start"`
}

type Window struct {
	Width     int  `toml:"width"`
	Height    int  `toml:"height"`
	Maximized bool `toml:"maximized"`
	TPS       int  `toml:"tps"`
}

type PointEntry struct {
	At [3]float64 `toml:"at"`
}

// PointFile is the format written by mkpoints and accepted by LoadPoints.
type PointFile struct {
	Point []PointEntry `toml:"point"`
}

func Default() Config {
	return Config{
		TextureSize: 512,
		Points:      "cube",
		View: View{
			ImageScale: 1,
			Fov:        math.Pi / 2,
			TurnSpeed:  0.02,
			MoveSpeed:  0.1,
		},
		Camera: Camera{Start: [3]float64{camera.DefaultStart.X, camera.DefaultStart.Y, camera.DefaultStart.Z}},
		Window: Window{Width: 1280, Height: 800, Maximized: true, TPS: 60},
	}
}

// Load reads path over the defaults.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	c, err := Parse(b)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes TOML over the defaults. Unknown fields are rejected.
func Parse(b []byte) (Config, error) {
	c := Default()
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		var sme *toml.StrictMissingError
		if errors.As(err, &sme) {
			return Config{}, errors.New(sme.String())
		}
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that have no sensible clamp.
func (c Config) Validate() error {
	if c.TextureSize < 0 {
		return fmt.Errorf("texture_size must not be negative (got %d)", c.TextureSize)
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("window size must not be negative (got %dx%d)", c.Window.Width, c.Window.Height)
	}
	for _, v := range c.Camera.Start {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("camera.start must be finite (got %v)", c.Camera.Start)
		}
	}
	_, err := c.Bindings()
	return err
}

// Bindings applies the [keys] overrides to the default bindings.
func (c Config) Bindings() (controls.Bindings, error) {
	b := controls.DefaultBindings()
	names := make([]string, 0, len(c.Keys))
	for name := range c.Keys {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		k, err := hal.ParseKeyCode(c.Keys[name])
		if err != nil {
			return b, fmt.Errorf("keys.%s: %w", name, err)
		}
		if err := b.Set(name, k); err != nil {
			return b, fmt.Errorf("keys: %w", err)
		}
	}
	return b, nil
}

// PointSet returns the configured points: explicit entries first, then the
// named built-in set.
func (c Config) PointSet() ([]r3.Vec, error) {
	var pts []r3.Vec
	if len(c.Point) > 0 {
		pts = entriesToVecs(c.Point)
	} else {
		var err error
		if pts, err = points.ByName(c.Points); err != nil {
			return nil, err
		}
	}
	if err := points.Validate(pts); err != nil {
		return nil, err
	}
	return pts, nil
}

// Start is the initial camera translation.
func (c Config) Start() r3.Vec {
	return r3.Vec{X: c.Camera.Start[0], Y: c.Camera.Start[1], Z: c.Camera.Start[2]}
}

// LoadPoints reads a point file.
func LoadPoints(path string) ([]r3.Vec, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("points: %w", err)
	}
	var pf PointFile
	if err := toml.Unmarshal(b, &pf); err != nil {
		return nil, fmt.Errorf("points %s: %w", path, err)
	}
	pts := entriesToVecs(pf.Point)
	if err := points.Validate(pts); err != nil {
		return nil, fmt.Errorf("points %s: %w", path, err)
	}
	return pts, nil
}

// WritePoints encodes pts as a point file.
func WritePoints(w io.Writer, pts []r3.Vec) error {
	pf := PointFile{Point: make([]PointEntry, len(pts))}
	for i, p := range pts {
		pf.Point[i] = PointEntry{At: [3]float64{p.X, p.Y, p.Z}}
	}
	return toml.NewEncoder(w).Encode(pf)
}

func entriesToVecs(es []PointEntry) []r3.Vec {
	out := make([]r3.Vec, len(es))
	for i, e := range es {
		out[i] = r3.Vec{X: e.At[0], Y: e.At[1], Z: e.At[2]}
	}
	return out
}
