// Package projection maps world points through the camera pose and a
// perspective projection onto the viewport.
//
// Pipeline (fixed):
//
//	World → Camera (pose) → Clip (perspective + divide) → Visibility → Screen.
//
// Every point goes through every stage, visible or not, so the debug
// overlay can show the full chain.
package projection

import (
	"math"

	"umapview/viewer/camera"

	"gonum.org/v1/gonum/spatial/r3"
)

// Clip planes.
const (
	Near = 0.001
	Far  = 10000.0
)

// Viewport is the drawable area in pixels.
type Viewport struct {
	Width, Height float64
}

// Aspect is width/height, or 0 when the height is not positive.
func (v Viewport) Aspect() float64 {
	if v.Height <= 0 {
		return 0
	}
	return v.Width / v.Height
}

// Params are the camera intrinsics for one frame.
type Params struct {
	Aspect float64
	FovY   float64 // vertical, radians
	Near   float64
	Far    float64
}

// NewParams derives the frame's parameters from the viewport and fov.
func NewParams(vp Viewport, fovY float64) Params {
	return Params{Aspect: vp.Aspect(), FovY: fovY, Near: Near, Far: Far}
}

// Valid reports whether a projection matrix can be built from p.
func (p Params) Valid() bool {
	return finite(p.Aspect) && p.Aspect > 0 &&
		finite(p.FovY) && p.FovY > 0 && p.FovY < math.Pi &&
		p.Near > 0 && p.Far > p.Near && finite(p.Far)
}

// Matrix returns the perspective matrix for p.
func (p Params) Matrix() Mat4 {
	return Perspective(p.Aspect, p.FovY, p.Near, p.Far)
}

// Projected is one point's trip through the pipeline.
type Projected struct {
	World    r3.Vec
	Camera   r3.Vec
	Clip     r3.Vec
	Screen   r3.Vec // y grows upwards from the bottom edge
	Visible  bool
	Distance float64 // |Camera|
}

// Frame is the projection of the whole point set for one frame.
type Frame struct {
	Viewport Viewport
	Params   Params
	// Degenerate is set when the viewport or fov cannot be projected;
	// no point is visible in such a frame.
	Degenerate bool
	Points     []Projected
}

// Counts returns the number of visible points and the total.
func (f Frame) Counts() (visible, total int) {
	for i := range f.Points {
		if f.Points[i].Visible {
			visible++
		}
	}
	return visible, len(f.Points)
}

// Visible returns the visible points in input order.
func (f Frame) Visible() []Projected {
	out := make([]Projected, 0, len(f.Points))
	for _, p := range f.Points {
		if p.Visible {
			out = append(out, p)
		}
	}
	return out
}

// Project runs every point through the pipeline. dst is reused when it has
// enough capacity.
func Project(pose *camera.Pose, fovY float64, vp Viewport, points []r3.Vec, dst []Projected) Frame {
	params := NewParams(vp, fovY)
	f := Frame{
		Viewport:   vp,
		Params:     params,
		Degenerate: !params.Valid() || vp.Width <= 0 || vp.Height <= 0,
	}
	if cap(dst) < len(points) {
		dst = make([]Projected, len(points))
	}
	dst = dst[:len(points)]

	m := params.Matrix()
	for i, w := range points {
		pc := pose.TransformPoint(w)
		pr := Projected{
			World:    w,
			Camera:   pc,
			Distance: r3.Norm(pc),
		}
		if !f.Degenerate {
			clip, ok := m.TransformPoint(pc)
			pr.Clip = clip
			pr.Visible = ok && InClip(clip)
			pr.Screen = ToScreen(clip, vp)
		}
		dst[i] = pr
	}
	f.Points = dst
	return f
}

// InClip reports whether c lies strictly inside the clip cube.
// NaN coordinates are never inside.
func InClip(c r3.Vec) bool {
	return inOpen(c.X) && inOpen(c.Y) && inOpen(c.Z)
}

func inOpen(v float64) bool { return v > -1 && v < 1 }

// ToScreen maps clip x/y to viewport pixels with the origin at the
// bottom-left corner. Callers drawing in top-left space flip y.
func ToScreen(clip r3.Vec, vp Viewport) r3.Vec {
	return r3.Vec{
		X: vp.Width * (clip.X + 1) / 2,
		Y: vp.Height * (clip.Y + 1) / 2,
	}
}

// Unproject returns the world point that projects to screen position
// (sx, sy) at clip depth ndcZ. ok is false for invalid params or a depth
// that maps to no finite camera-space z.
func Unproject(pose *camera.Pose, p Params, vp Viewport, sx, sy, ndcZ float64) (r3.Vec, bool) {
	if !p.Valid() || vp.Width <= 0 || vp.Height <= 0 {
		return r3.Vec{}, false
	}
	nx := 2*sx/vp.Width - 1
	ny := 2*sy/vp.Height - 1

	a := (p.Far + p.Near) / (p.Near - p.Far)
	b := 2 * p.Far * p.Near / (p.Near - p.Far)
	if ndcZ+a == 0 {
		return r3.Vec{}, false
	}
	zc := -b / (ndcZ + a)
	f := 1 / math.Tan(p.FovY/2)
	pc := r3.Vec{
		X: nx * -zc * p.Aspect / f,
		Y: ny * -zc / f,
		Z: zc,
	}
	return pose.InverseTransformPoint(pc), true
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
