package resman

import (
	xstrings "github.com/frantjc/x/strings"
	"golang.org/x/mod/semver"
)

// Version is set at build time with
// -ldflags "-X github.com/frantjc/resman.Version=...".
var Version = "0.0.0-unknown"

// SemVer returns the canonical semantic version of resman,
// or "v0.0.0" if Version is not a valid one.
func SemVer() string {
	if v := semver.Canonical(xstrings.EnsurePrefix(Version, "v")); v != "" {
		return v
	}

	return "v0.0.0"
}
