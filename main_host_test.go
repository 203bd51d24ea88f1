package main

import (
	"os"
	"path/filepath"
	"testing"

	"umapview/hal"
	"umapview/internal/config"
)

func TestParseSize(t *testing.T) {
	w, h, err := parseSize("320x200")
	if err != nil || w != 320 || h != 200 {
		t.Fatalf("parseSize = %d,%d,%v", w, h, err)
	}
	for _, bad := range []string{"320", "x200", "0x10", "ax b", "-1x5"} {
		if _, _, err := parseSize(bad); err == nil {
			t.Fatalf("parseSize(%q) accepted", bad)
		}
	}
}

func TestParseHold(t *testing.T) {
	keys, err := parseHold("W, Left,space")
	if err != nil {
		t.Fatalf("parseHold: %v", err)
	}
	want := []hal.KeyCode{hal.KeyW, hal.KeyLeft, hal.KeySpace}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys[%d] = %v, want %v", i, keys[i], want[i])
		}
	}
	if keys, err := parseHold(""); err != nil || keys != nil {
		t.Fatalf("empty hold = %v, %v", keys, err)
	}
	if _, err := parseHold("W,Nope"); err == nil {
		t.Fatal("unknown key accepted")
	}
}

func TestBuildAppConfigOverrides(t *testing.T) {
	cfg := config.Default()
	ac, err := buildAppConfig(cfg, options{points: "axes", debug: true})
	if err != nil {
		t.Fatalf("buildAppConfig: %v", err)
	}
	if !ac.Debug {
		t.Fatal("debug flag not applied")
	}
	if ac.Texture != nil {
		t.Fatal("no image configured, texture should be nil")
	}
	if len(ac.Points) == 16 {
		t.Fatal("points flag not applied")
	}
}

func TestBuildAppConfigMissingImageIsFatal(t *testing.T) {
	_, err := buildAppConfig(config.Default(), options{image: filepath.Join(t.TempDir(), "missing.png")})
	if err == nil {
		t.Fatal("expected error for missing image")
	}
}

func TestResolvePointsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pts.toml")
	if err := os.WriteFile(path, []byte("[[point]]\nat = [1.0, 2.0, 3.0]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	pts, err := resolvePoints(path)
	if err != nil {
		t.Fatalf("resolvePoints: %v", err)
	}
	if len(pts) != 1 || pts[0].Y != 2 {
		t.Fatalf("pts = %v", pts)
	}
	if _, err := resolvePoints("nope"); err == nil {
		t.Fatal("expected error")
	}
}
