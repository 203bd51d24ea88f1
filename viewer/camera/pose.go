// Package camera holds the viewer's rigid-body camera pose.
//
// A Pose is a unit dual quaternion q = r + ε·½·t·r, with r the rotation and
// t the translation. It maps world points into camera space:
//
//	p_cam = r·p·r* + t
//
// Updates are composed on the left (q ← inc·q), so every rotation and
// translation is expressed in the camera's own frame.
package camera

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultStart is where a default camera sits.
var DefaultStart = r3.Vec{X: 0, Y: 0, Z: -5}

// Pose is the camera placement. The zero value is not usable; use New or
// Default.
type Pose struct {
	q dualquat.Number
}

// New returns a pose with the given translation and rotation. A zero
// rotation is treated as identity.
func New(translation r3.Vec, rotation quat.Number) *Pose {
	return &Pose{q: fromParts(translation, rotation)}
}

// Default places the camera at DefaultStart with identity orientation.
func Default() *Pose {
	return New(DefaultStart, quat.Number{Real: 1})
}

// Reset replaces the pose in place.
func (p *Pose) Reset(translation r3.Vec, rotation quat.Number) {
	p.q = fromParts(translation, rotation)
}

// Rotate composes a rotation of angle radians about axis.
// A zero axis leaves the pose unchanged.
func (p *Pose) Rotate(axis r3.Vec, angle float64) {
	n := r3.Norm(axis)
	if n == 0 {
		return
	}
	u := r3.Scale(1/n, axis)
	s, c := math.Sincos(angle / 2)
	inc := dualquat.Number{Real: quat.Number{Real: c, Imag: s * u.X, Jmag: s * u.Y, Kmag: s * u.Z}}
	p.compose(inc)
}

// Translate composes a translation by offset.
func (p *Pose) Translate(offset r3.Vec) {
	inc := dualquat.Number{
		Real: quat.Number{Real: 1},
		Dual: quat.Scale(0.5, raise(offset)),
	}
	p.compose(inc)
}

func (p *Pose) compose(inc dualquat.Number) {
	q := dualquat.Mul(inc, p.q)
	// Rebuild from parts to keep r unit length and the dual part orthogonal.
	p.q = fromParts(translationOf(q), q.Real)
}

// TransformPoint maps a world point into camera space.
func (p *Pose) TransformPoint(v r3.Vec) r3.Vec {
	pt := dualquat.Number{Real: quat.Number{Real: 1}, Dual: raise(v)}
	out := dualquat.Mul(dualquat.Mul(p.q, pt), dualquat.Conj(p.q))
	return lower(out.Dual)
}

// InverseTransformPoint maps a camera-space point back to world space.
func (p *Pose) InverseTransformPoint(v r3.Vec) r3.Vec {
	r := p.q.Real
	d := raise(r3.Sub(v, p.Translation()))
	return lower(quat.Mul(quat.Mul(quat.Conj(r), d), r))
}

// Origin is the camera position in world space.
func (p *Pose) Origin() r3.Vec {
	return p.InverseTransformPoint(r3.Vec{})
}

// Rotation returns the unit rotation quaternion.
func (p *Pose) Rotation() quat.Number { return p.q.Real }

// Translation returns the translation applied after rotation.
func (p *Pose) Translation() r3.Vec { return translationOf(p.q) }

// Dual returns the underlying dual quaternion.
func (p *Pose) Dual() dualquat.Number { return p.q }

func (p *Pose) String() string {
	t := p.Translation()
	r := p.Rotation()
	return fmt.Sprintf("t=(%.3f, %.3f, %.3f) r=(%.4f%+.4fi%+.4fj%+.4fk)",
		t.X, t.Y, t.Z, r.Real, r.Imag, r.Jmag, r.Kmag)
}

func fromParts(t r3.Vec, r quat.Number) dualquat.Number {
	n := quat.Abs(r)
	if n == 0 || math.IsNaN(n) {
		r = quat.Number{Real: 1}
	} else {
		r = quat.Scale(1/n, r)
	}
	return dualquat.Number{
		Real: r,
		Dual: quat.Scale(0.5, quat.Mul(raise(t), r)),
	}
}

// translationOf recovers t = 2·dual·real* / |real|².
func translationOf(q dualquat.Number) r3.Vec {
	n := quat.Abs(q.Real)
	if n == 0 {
		return r3.Vec{}
	}
	return lower(quat.Scale(2/(n*n), quat.Mul(q.Dual, quat.Conj(q.Real))))
}

func raise(v r3.Vec) quat.Number {
	return quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
}

func lower(q quat.Number) r3.Vec {
	return r3.Vec{X: q.Imag, Y: q.Jmag, Z: q.Kmag}
}
