// Package version exposes build-time version information for the atlasd binary.
package version

// Version is the semantic version of the build. It is overridden at release
// time via -ldflags "-X github.com/rshade/atlasd/pkg/version.Version=...".
//
//nolint:gochecknoglobals // Set by the linker at build time.
var Version = "0.1.0-dev"

// Get returns the current version string.
func Get() string {
	return Version
}
