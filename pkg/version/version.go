// Package version holds the build version, set at link time with
// -ldflags "-X github.com/rshade/carbonfoot/pkg/version.version=v1.2.3".
package version

import "runtime/debug"

// devVersion is reported when neither ldflags nor module info set a version.
const devVersion = "dev"

//nolint:gochecknoglobals // Overridden at link time.
var version = ""

// GetVersion returns the build version.
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return devVersion
}
