// Package version exposes the slidekit build version.
package version

// Version is the current slidekit version. Overridden at build time via
// -ldflags "-X github.com/slidekit/slidekit/pkg/version.Version=...".
//
//nolint:gochecknoglobals // Build-time injection requires a package variable.
var Version = "0.1.0"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}
