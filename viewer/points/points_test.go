package points

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestCube(t *testing.T) {
	c := Cube()
	require.Len(t, c, 16)
	assert.Equal(t, r3.Vec{}, c[0])
	assert.Equal(t, r3.Vec{X: 1, Y: 1, Z: 1}, c[7])
	assert.Equal(t, r3.Vec{X: 0.25, Y: 0.25, Z: 0.25}, c[8])
	assert.Equal(t, r3.Vec{X: 0.75, Y: 0.75, Z: 0.75}, c[15])
	assert.Equal(t, r3.Box{Max: r3.Vec{X: 1, Y: 1, Z: 1}}, Bounds(c))
}

func TestAxes(t *testing.T) {
	a := Axes(5, 1)
	require.Len(t, a, 33)
	assert.Contains(t, a, r3.Vec{X: -5})
	assert.Contains(t, a, r3.Vec{Y: 5})
	assert.Contains(t, a, r3.Vec{Z: 3})
	assert.Len(t, Axes(-1, 1), 3)
}

func TestByName(t *testing.T) {
	c, err := ByName(" Cube ")
	require.NoError(t, err)
	assert.Len(t, c, 16)

	_, err = ByName("torus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "axes, cube")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(Cube()))
	assert.ErrorIs(t, Validate(nil), ErrEmpty)
	assert.Error(t, Validate([]r3.Vec{{X: math.NaN()}}))
	assert.Error(t, Validate([]r3.Vec{{}, {Z: math.Inf(-1)}}))
}

func TestBoundsEmpty(t *testing.T) {
	assert.Equal(t, r3.Box{}, Bounds(nil))
}
