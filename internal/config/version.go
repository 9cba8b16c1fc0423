package config

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// CurrentVersion is the schema version written by `config init`.
const CurrentVersion = "1.0.0"

// supportedVersions is the range of schema versions this build reads.
const supportedVersions = "^1.0.0"

// CheckVersion reports whether a config schema version can be read. An empty
// version is accepted and treated as current.
func CheckVersion(v string) error {
	if v == "" {
		return nil
	}
	ver, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedVersion, v, err)
	}
	constraint, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}
	if !constraint.Check(ver) {
		return fmt.Errorf("%w: %s (supported %s)", ErrUnsupportedVersion, v, supportedVersions)
	}
	return nil
}
