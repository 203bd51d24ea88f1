package app

import (
	"context"
	"errors"
	"image"
	"image/color"
	"log/slog"

	"umapview/hal"
	"umapview/viewer/billboard"
	"umapview/viewer/camera"
	"umapview/viewer/controls"
	"umapview/viewer/points"
	"umapview/viewer/projection"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

type Config struct {
	Settings Settings
	Bindings controls.Bindings
	Start    r3.Vec
	Points   []r3.Vec
	// Texture is drawn at every visible point. Nil selects a placeholder.
	Texture image.Image
	Debug   bool
}

// DefaultConfig is the cube seen from the default camera.
func DefaultConfig() Config {
	return Config{
		Settings: DefaultSettings(),
		Bindings: controls.DefaultBindings(),
		Start:    camera.DefaultStart,
		Points:   points.Cube(),
	}
}

// Viewer owns the camera, the point set and the texture. It is driven by a
// hal runner on a single goroutine.
type Viewer struct {
	log  *slog.Logger
	keys hal.KeyState

	start    r3.Vec
	pose     *camera.Pose
	mapper   *controls.Mapper
	settings Settings
	points   []r3.Vec
	texture  image.Image
	texSize  image.Point
	debug    bool

	frame  projection.Frame
	buf    []projection.Projected
	placed []billboard.Placement
	ticks  uint64
}

var ErrNoInput = errors.New("hal has no keyboard")

// New builds a viewer. The point set is copied and never changes.
func New(h hal.HAL, cfg Config) (*Viewer, error) {
	if h == nil || h.Input() == nil || h.Input().Keyboard() == nil {
		return nil, ErrNoInput
	}
	if err := points.Validate(cfg.Points); err != nil {
		return nil, err
	}
	tex := cfg.Texture
	if tex == nil {
		tex = billboard.Placeholder(64, color.RGBA{R: 0x4f, G: 0xc3, B: 0xf7, A: 0xff})
	}

	v := &Viewer{
		log:      h.Logger(),
		keys:     h.Input().Keyboard(),
		start:    cfg.Start,
		pose:     camera.New(cfg.Start, quat.Number{Real: 1}),
		mapper:   controls.NewMapper(cfg.Bindings),
		settings: cfg.Settings.Clamped(),
		points:   append([]r3.Vec(nil), cfg.Points...),
		texture:  tex,
		texSize:  tex.Bounds().Size(),
		debug:    cfg.Debug,
	}
	v.log.Info("viewer ready",
		"points", len(v.points),
		"texture", v.texSize,
		"fov", v.settings.Fov,
		"start", v.start,
	)
	return v, nil
}

// Update runs once per tick: settings hotkeys, then camera movement.
func (v *Viewer) Update() error {
	v.ticks++
	v.handleHotkeys()
	applied := v.mapper.Apply(v.keys, v.pose, controls.Speeds{
		Turn: v.settings.TurnSpeed,
		Move: v.settings.MoveSpeed,
	})
	if len(applied) > 0 && v.log.Enabled(context.Background(), slog.LevelDebug) {
		v.log.Debug("pose updated", "tick", v.ticks, "actions", applied, "pose", v.pose.String())
	}
	return nil
}

// Draw projects the point set for the display's current size and draws a
// billboard over every visible point.
func (v *Viewer) Draw(d hal.Display) {
	w, h := d.Size()
	v.Project(projection.Viewport{Width: float64(w), Height: float64(h)})
	v.placed = billboard.Layout(v.frame, v.texSize, v.settings.ImageScale, v.placed)
	for _, p := range v.placed {
		d.DrawImage(v.texture, p.X, p.Y, p.W, p.H)
	}
	v.drawOverlay(d, h)
}

// Project recomputes the frame for vp.
func (v *Viewer) Project(vp projection.Viewport) projection.Frame {
	v.frame = projection.Project(v.pose, v.settings.Fov, vp, v.points, v.buf)
	v.buf = v.frame.Points
	return v.frame
}

// ResetPose puts the camera back at its start.
func (v *Viewer) ResetPose() {
	v.pose.Reset(v.start, quat.Number{Real: 1})
}

func (v *Viewer) Pose() *camera.Pose                { return v.pose }
func (v *Viewer) Settings() Settings                { return v.settings }
func (v *Viewer) SetSettings(s Settings)            { v.settings = s.Clamped() }
func (v *Viewer) Frame() projection.Frame           { return v.frame }
func (v *Viewer) Placements() []billboard.Placement { return v.placed }
func (v *Viewer) Debug() bool                       { return v.debug }
func (v *Viewer) SetDebug(on bool)                  { v.debug = on }
