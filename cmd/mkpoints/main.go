package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"umapview/internal/config"
	"umapview/viewer/points"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat/distuv"
)

func main() {
	var (
		layout   = flag.String("layout", "cube", "cube|axes|clusters.")
		n        = flag.Int("n", 200, "Points per axis (axes) or in total (clusters).")
		clusters = flag.Int("clusters", 4, "Number of gaussian clusters.")
		spread   = flag.Float64("spread", 0.3, "Standard deviation of each cluster.")
		seed     = flag.Uint64("seed", 1, "Random seed for clusters.")
		outPath  = flag.String("out", "", "Output TOML file (default stdout).")
	)
	flag.Parse()

	pts, err := generate(*layout, *n, *clusters, *spread, *seed)
	if err != nil {
		fatalf("mkpoints: %v", err)
	}

	var w io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fatalf("mkpoints: %v", err)
		}
		defer f.Close()
		w = f
	}
	bw := bufio.NewWriter(w)
	if err := config.WritePoints(bw, pts); err != nil {
		fatalf("mkpoints: write: %v", err)
	}
	if err := bw.Flush(); err != nil {
		fatalf("mkpoints: write: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func generate(layout string, n, k int, spread float64, seed uint64) ([]r3.Vec, error) {
	switch strings.ToLower(layout) {
	case "cube":
		return points.Cube(), nil
	case "axes":
		if n <= 0 {
			return nil, fmt.Errorf("n out of range: %d", n)
		}
		return points.Axes(n, 1), nil
	case "clusters":
		return gaussianClusters(n, k, spread, seed)
	default:
		return nil, fmt.Errorf("unknown layout: %s", layout)
	}
}

// gaussianClusters scatters n points around k centres drawn uniformly from
// the cube [-2, 2]^3. Points are assigned to centres round-robin.
func gaussianClusters(n, k int, spread float64, seed uint64) ([]r3.Vec, error) {
	if n <= 0 {
		return nil, fmt.Errorf("n out of range: %d", n)
	}
	if k <= 0 || k > n {
		return nil, fmt.Errorf("clusters out of range: %d", k)
	}
	if !(spread > 0) {
		return nil, fmt.Errorf("spread must be positive: %v", spread)
	}

	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	centre := distuv.Uniform{Min: -2, Max: 2, Src: src}
	noise := distuv.Normal{Mu: 0, Sigma: spread, Src: src}

	centres := make([]r3.Vec, k)
	for i := range centres {
		centres[i] = r3.Vec{X: centre.Rand(), Y: centre.Rand(), Z: centre.Rand()}
	}
	out := make([]r3.Vec, n)
	for i := range out {
		out[i] = r3.Add(centres[i%k], r3.Vec{X: noise.Rand(), Y: noise.Rand(), Z: noise.Rand()})
	}
	return out, nil
}
