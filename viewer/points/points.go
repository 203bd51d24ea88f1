// Package points provides the fixed point sets the viewer can show.
package points

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

var ErrEmpty = errors.New("point set is empty")

// Cube is the unit cube corners plus an inner cube at 0.25/0.75.
func Cube() []r3.Vec {
	out := make([]r3.Vec, 0, 16)
	for _, v := range [][2]float64{{0, 1}, {0.25, 0.75}} {
		for _, x := range v {
			for _, y := range v {
				for _, z := range v {
					out = append(out, r3.Vec{X: x, Y: y, Z: z})
				}
			}
		}
	}
	return out
}

// Axes places points along the three axes at step spacing, from -n to n
// steps. The origin appears once per axis.
func Axes(n int, step float64) []r3.Vec {
	if n < 0 {
		n = 0
	}
	out := make([]r3.Vec, 0, 3*(2*n+1))
	for i := -n; i <= n; i++ {
		p := float64(i) * step
		out = append(out,
			r3.Vec{X: p},
			r3.Vec{Y: p},
			r3.Vec{Z: p},
		)
	}
	return out
}

var builtins = map[string]func() []r3.Vec{
	"cube": Cube,
	"axes": func() []r3.Vec { return Axes(5, 1) },
}

// Names lists the built-in sets.
func Names() []string {
	out := make([]string, 0, len(builtins))
	for k := range builtins {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ByName returns a built-in set.
func ByName(name string) ([]r3.Vec, error) {
	fn, ok := builtins[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown point set %q (have %s)", name, strings.Join(Names(), ", "))
	}
	return fn(), nil
}

// Validate rejects empty sets and non-finite coordinates.
func Validate(pts []r3.Vec) error {
	if len(pts) == 0 {
		return ErrEmpty
	}
	for i, p := range pts {
		for _, c := range [3]float64{p.X, p.Y, p.Z} {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return fmt.Errorf("point %d: non-finite coordinate in %+v", i, p)
			}
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of pts.
func Bounds(pts []r3.Vec) r3.Box {
	if len(pts) == 0 {
		return r3.Box{}
	}
	b := r3.Box{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b.Min = r3.Vec{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)}
		b.Max = r3.Vec{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)}
	}
	return b
}
