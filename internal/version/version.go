// Package version exposes build identity for the chuck CLI.
//
// The variables are injected at build time via ldflags:
//
//	-ldflags "-X chuck/internal/version.version=v1.2.0 -X chuck/internal/version.commit=abc123 -X chuck/internal/version.date=2025-08-25T00:00:00Z"
package version

import "fmt"

// Set via ldflags during release builds.
var (
	version string
	commit  string
	date    string
)

// Defaults reported by local builds without ldflags injection.
const (
	defaultVersion = "dev"
	defaultCommit  = "unknown"
	defaultDate    = "unknown"
)

// Short returns the bare version string, e.g. "v1.2.0" or "dev".
func Short() string {
	if version == "" {
		return defaultVersion
	}
	return version
}

// String returns the full identity line shown by --version.
func String() string {
	c := commit
	if c == "" {
		c = defaultCommit
	}
	d := date
	if d == "" {
		d = defaultDate
	}
	return fmt.Sprintf("%s (commit %s, built %s)", Short(), c, d)
}
