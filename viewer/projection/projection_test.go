package projection

import (
	"math"
	"math/rand/v2"
	"testing"

	"umapview/viewer/camera"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

func identityAtOrigin() *camera.Pose {
	return camera.New(r3.Vec{}, quat.Number{Real: 1})
}

func TestPointAheadProjectsToCentre(t *testing.T) {
	vp := Viewport{Width: 800, Height: 800}
	f := Project(identityAtOrigin(), math.Pi/2, vp, []r3.Vec{{Z: -5}}, nil)

	require.False(t, f.Degenerate)
	require.Len(t, f.Points, 1)
	p := f.Points[0]
	assert.True(t, p.Visible)
	assert.InDelta(t, 400, p.Screen.X, 1e-9)
	assert.InDelta(t, 400, p.Screen.Y, 1e-9)
	assert.InDelta(t, 5, p.Distance, 1e-12)
	assert.Equal(t, 1.0, f.Params.Aspect)
	assert.Equal(t, Near, f.Params.Near)
	assert.Equal(t, Far, f.Params.Far)
}

func TestDefaultCameraSeesCube(t *testing.T) {
	vp := Viewport{Width: 1024, Height: 768}
	pts := []r3.Vec{{}, {X: 1, Y: 1, Z: 1}, {X: 0.5, Y: 0.5, Z: 0.5}}
	f := Project(camera.Default(), math.Pi/2, vp, pts, nil)
	vis, total := f.Counts()
	assert.Equal(t, 3, vis)
	assert.Equal(t, 3, total)
}

func TestInClipIsOpen(t *testing.T) {
	assert.True(t, InClip(r3.Vec{}))
	assert.True(t, InClip(r3.Vec{X: 0.999999, Y: -0.999999, Z: 0.5}))
	for _, c := range []r3.Vec{
		{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
		{X: math.NaN()}, {Z: math.Inf(1)},
	} {
		assert.Falsef(t, InClip(c), "%+v should not be inside", c)
	}
}

func TestOutsideDepthRange(t *testing.T) {
	vp := Viewport{Width: 640, Height: 480}
	pts := []r3.Vec{
		{Z: 5},          // behind
		{Z: -20000},     // beyond far
		{Z: -Near / 2},  // in front of near
		{},              // at the eye
		{X: 100, Z: -1}, // off to the side
	}
	f := Project(identityAtOrigin(), 1, vp, pts, nil)
	for i, p := range f.Points {
		assert.Falsef(t, p.Visible, "point %d %+v", i, p.World)
	}
}

func TestVisibilityMatchesFrustum(t *testing.T) {
	const fov = 1.2
	vp := Viewport{Width: 800, Height: 500}
	aspect := vp.Aspect()
	th := math.Tan(fov / 2)
	rng := rand.New(rand.NewPCG(1, 2))

	pose := identityAtOrigin()
	for i := 0; i < 2000; i++ {
		depth := math.Exp(math.Log(0.01) + rng.Float64()*(math.Log(9000)-math.Log(0.01)))
		halfW := depth * th * aspect
		halfH := depth * th
		x := (rng.Float64()*2 - 1) * 1.5 * halfW
		y := (rng.Float64()*2 - 1) * 1.5 * halfH
		rx, ry := math.Abs(x)/halfW, math.Abs(y)/halfH
		if math.Abs(rx-1) < 1e-6 || math.Abs(ry-1) < 1e-6 {
			continue
		}
		want := rx < 1 && ry < 1

		f := Project(pose, fov, vp, []r3.Vec{{X: x, Y: y, Z: -depth}}, nil)
		require.Equalf(t, want, f.Points[0].Visible, "x=%v y=%v z=%v", x, y, -depth)
	}
}

func TestVisibilityInvariantUnderJointTranslation(t *testing.T) {
	vp := Viewport{Width: 640, Height: 480}
	pose := camera.Default()
	pose.Rotate(r3.Vec{X: 0.3, Y: 1}, 0.4)
	pose.Translate(r3.Vec{X: 0.2, Z: 0.7})

	pts := []r3.Vec{{}, {X: 1, Y: 1, Z: 1}, {X: 3, Y: -2, Z: 4}, {X: -1, Z: 10}, {Y: 0.75, Z: 0.25}}
	base := Project(pose, 1.4, vp, pts, nil)

	d := r3.Vec{X: 12, Y: -3, Z: 40}
	// Moving the camera by d in world space: t' = t - R·d.
	rd := pose.TransformPoint(d)
	rd = r3.Sub(rd, pose.Translation())
	moved := camera.New(r3.Sub(pose.Translation(), rd), pose.Rotation())

	shifted := make([]r3.Vec, len(pts))
	for i, p := range pts {
		shifted[i] = r3.Add(p, d)
	}
	got := Project(moved, 1.4, vp, shifted, nil)

	for i := range pts {
		assert.Equal(t, base.Points[i].Visible, got.Points[i].Visible, "point %d", i)
		assert.InDelta(t, base.Points[i].Screen.X, got.Points[i].Screen.X, 1e-6)
		assert.InDelta(t, base.Points[i].Screen.Y, got.Points[i].Screen.Y, 1e-6)
	}
}

func TestUnprojectRoundTrip(t *testing.T) {
	vp := Viewport{Width: 1280, Height: 720}
	pose := camera.Default()
	pose.Rotate(r3.Vec{Y: 1}, -0.2)
	pose.Rotate(r3.Vec{X: 1}, 0.1)
	pose.Translate(r3.Vec{X: 0.3, Y: -0.1, Z: 1})

	pts := []r3.Vec{{}, {X: 1}, {Y: 1, Z: 1}, {X: 0.25, Y: 0.75, Z: 0.25}}
	f := Project(pose, math.Pi/2, vp, pts, nil)
	eye := pose.Origin()

	for i, p := range f.Points {
		require.Truef(t, p.Visible, "point %d", i)

		// Same depth recovers the point itself.
		back, ok := Unproject(pose, f.Params, vp, p.Screen.X, p.Screen.Y, p.Clip.Z)
		require.True(t, ok)
		assert.InDelta(t, 0, r3.Norm(r3.Sub(back, p.World)), 1e-6)

		// Another depth lands on the same ray from the eye.
		other, ok := Unproject(pose, f.Params, vp, p.Screen.X, p.Screen.Y, 0.5)
		require.True(t, ok)
		a := r3.Unit(r3.Sub(p.World, eye))
		b := r3.Unit(r3.Sub(other, eye))
		assert.Truef(t, scalar.EqualWithinAbs(r3.Norm(r3.Cross(a, b)), 0, 1e-6), "point %d off ray", i)
		assert.Greater(t, r3.Dot(a, b), 0.0)
	}
}

func TestDegenerateFrames(t *testing.T) {
	pts := []r3.Vec{{Z: -5}, {X: 0.1, Z: -3}}
	cases := []struct {
		name string
		vp   Viewport
		fov  float64
	}{
		{"zero height", Viewport{Width: 800, Height: 0}, math.Pi / 2},
		{"zero width", Viewport{Width: 0, Height: 600}, math.Pi / 2},
		{"negative", Viewport{Width: -1, Height: -1}, math.Pi / 2},
		{"zero fov", Viewport{Width: 800, Height: 600}, 0},
		{"straight fov", Viewport{Width: 800, Height: 600}, math.Pi},
		{"nan fov", Viewport{Width: 800, Height: 600}, math.NaN()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := Project(identityAtOrigin(), tc.fov, tc.vp, pts, nil)
			assert.True(t, f.Degenerate)
			vis, total := f.Counts()
			assert.Zero(t, vis)
			assert.Equal(t, len(pts), total)
			// Camera-space values are still filled in.
			assert.Equal(t, -5.0, f.Points[0].Camera.Z)
			assert.Empty(t, f.Visible())

			_, ok := Unproject(identityAtOrigin(), f.Params, tc.vp, 0, 0, 0)
			assert.False(t, ok)
		})
	}
}

func TestProjectReusesDst(t *testing.T) {
	vp := Viewport{Width: 100, Height: 100}
	buf := make([]Projected, 0, 8)
	f := Project(identityAtOrigin(), 1, vp, []r3.Vec{{Z: -1}, {Z: -2}}, buf)
	require.Len(t, f.Points, 2)
	assert.Same(t, &buf[:1][0], &f.Points[0])
}

func TestVisibleKeepsOrder(t *testing.T) {
	vp := Viewport{Width: 100, Height: 100}
	pts := []r3.Vec{{Z: -1}, {Z: 1}, {Z: -2}}
	f := Project(identityAtOrigin(), 1, vp, pts, nil)
	vis := f.Visible()
	require.Len(t, vis, 2)
	assert.Equal(t, -1.0, vis[0].World.Z)
	assert.Equal(t, -2.0, vis[1].World.Z)
}

func TestPerspectiveMatrix(t *testing.T) {
	m := Perspective(2, math.Pi/2, 1, 3)
	assert.InDelta(t, 0.5, m[0], 1e-12)
	assert.InDelta(t, 1, m[5], 1e-12)
	assert.InDelta(t, -2, m[10], 1e-12)
	assert.Equal(t, -1.0, m[11])
	assert.InDelta(t, -3, m[14], 1e-12)

	// Near and far planes land on the clip cube faces.
	n, ok := m.TransformPoint(r3.Vec{Z: -1})
	require.True(t, ok)
	assert.InDelta(t, -1, n.Z, 1e-12)
	fr, _ := m.TransformPoint(r3.Vec{Z: -3})
	assert.InDelta(t, 1, fr.Z, 1e-12)

	_, ok = m.TransformPoint(r3.Vec{})
	assert.False(t, ok)
}

func TestMulIdentity(t *testing.T) {
	m := Perspective(1.5, 1, 0.1, 10)
	assert.Equal(t, m, Identity().Mul(m))
	assert.Equal(t, m, m.Mul(Identity()))
}
