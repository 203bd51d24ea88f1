// Package billboard sizes and places the per-point image.
package billboard

import (
	"image"
	"math"

	"umapview/viewer/projection"
)

// Scale is the on-screen scale of an image whose true size is base at the
// distance where it would fill the screen height.
//
// It falls with distance as base / (tan(fovY/2) · distance). A non-positive
// or non-finite distance yields 0.
func Scale(base, fovY, distance float64) float64 {
	if !(distance > 0) || math.IsInf(distance, 0) {
		return 0
	}
	s := base / (math.Tan(fovY/2) * distance)
	if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
		return 0
	}
	return s
}

// Placement is a draw rectangle in top-left screen space.
type Placement struct {
	X, Y, W, H float64
	Distance   float64
	// Index is the point's position in the frame.
	Index int
}

// Layout places the texture over every visible point of f.
//
// Images are centred on the projected position. Projection screen space
// has y growing upwards, so y is flipped against the viewport height.
func Layout(f projection.Frame, tex image.Point, base float64, dst []Placement) []Placement {
	dst = dst[:0]
	if f.Degenerate || tex.X <= 0 || tex.Y <= 0 {
		return dst
	}
	for i := range f.Points {
		p := &f.Points[i]
		if !p.Visible {
			continue
		}
		s := Scale(base, f.Params.FovY, p.Distance)
		w := math.Ceil(float64(tex.X) * s)
		h := math.Ceil(float64(tex.Y) * s)
		if w <= 0 || h <= 0 {
			continue
		}
		dst = append(dst, Placement{
			X:        p.Screen.X - w/2,
			Y:        f.Viewport.Height - p.Screen.Y - h/2,
			W:        w,
			H:        h,
			Distance: p.Distance,
			Index:    i,
		})
	}
	return dst
}
