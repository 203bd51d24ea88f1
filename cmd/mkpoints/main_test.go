package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"umapview/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLayouts(t *testing.T) {
	pts, err := generate("cube", 0, 0, 0, 0)
	require.NoError(t, err)
	assert.Len(t, pts, 16)

	pts, err = generate("AXES", 3, 0, 0, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, pts)

	_, err = generate("spiral", 10, 1, 1, 1)
	assert.Error(t, err)
}

func TestClustersDeterministic(t *testing.T) {
	a, err := generate("clusters", 100, 4, 0.2, 7)
	require.NoError(t, err)
	b, err := generate("clusters", 100, 4, 0.2, 7)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := generate("clusters", 100, 4, 0.2, 8)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	for _, p := range a {
		// Centres lie in [-2, 2]; 0.2 sigma noise never gets this far.
		assert.Less(t, p.X, 4.0)
		assert.Greater(t, p.X, -4.0)
	}
}

func TestClustersRejectBadArgs(t *testing.T) {
	for _, tc := range []struct {
		n, k   int
		spread float64
	}{
		{0, 1, 1},
		{10, 0, 1},
		{3, 4, 1},
		{10, 2, 0},
		{10, 2, -1},
	} {
		_, err := gaussianClusters(tc.n, tc.k, tc.spread, 1)
		assert.Error(t, err, "n=%d k=%d spread=%v", tc.n, tc.k, tc.spread)
	}
}

func TestWrittenFileLoads(t *testing.T) {
	pts, err := generate("clusters", 50, 5, 0.5, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, config.WritePoints(&buf, pts))
	path := filepath.Join(t.TempDir(), "clusters.toml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	back, err := config.LoadPoints(path)
	require.NoError(t, err)
	require.Len(t, back, len(pts))
	for i := range pts {
		assert.InDelta(t, pts[i].X, back[i].X, 1e-12)
		assert.InDelta(t, pts[i].Z, back[i].Z, 1e-12)
	}
}
