package projection

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec4 is a homogeneous coordinate.
type Vec4 struct {
	X, Y, Z, W float64
}

// Mat4 is a column-major 4x4 matrix.
//
// It matches the conventional OpenGL layout:
// m[col*4+row].
type Mat4 [16]float64

func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func (m Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[col*4+row] =
				m[0*4+row]*b[col*4+0] +
					m[1*4+row]*b[col*4+1] +
					m[2*4+row]*b[col*4+2] +
					m[3*4+row]*b[col*4+3]
		}
	}
	return out
}

func (m Mat4) MulV4(v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// TransformPoint multiplies p (w = 1) and divides by the resulting w.
// When w is zero the point is returned undivided and ok is false.
func (m Mat4) TransformPoint(p r3.Vec) (out r3.Vec, ok bool) {
	h := m.MulV4(Vec4{X: p.X, Y: p.Y, Z: p.Z, W: 1})
	if h.W == 0 {
		return r3.Vec{X: h.X, Y: h.Y, Z: h.Z}, false
	}
	return r3.Vec{X: h.X / h.W, Y: h.Y / h.W, Z: h.Z / h.W}, true
}

// Perspective is the right-handed OpenGL projection looking down -Z,
// mapping [near, far] to clip z in [-1, 1].
func Perspective(aspect, fovY, near, far float64) Mat4 {
	f := 1 / math.Tan(fovY/2)
	nf := 1 / (near - far)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, (2 * far * near) * nf, 0,
	}
}
