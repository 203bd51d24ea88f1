package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Set at build time via -ldflags "-X umapview/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the window title.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if c := commit(); c != "" {
		if len(c) > 12 {
			c = c[:12]
		}
		return c
	}
	return "dev"
}

// String is the full identifier logged at startup.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Short(), orUnknown(commit()), Date)
}

// commit prefers the ldflags value and falls back to the VCS stamp the Go
// toolchain embeds.
func commit() string {
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return ""
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
