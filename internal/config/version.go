package config

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// supportedVersions constrains the config schema versions this build can
// read. Patch-level additions stay compatible within the 1.x line.
const supportedVersions = ">= 1.0, < 2.0"

// CheckVersion reports whether a config schema version is readable by this
// build. Bare major.minor values like "1.0" are accepted.
func CheckVersion(version string) error {
	if version == "" {
		return fmt.Errorf("config version is missing, expected %q", CurrentVersion)
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("config version %q is not a valid version: %w", version, err)
	}

	constraint, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}

	if !constraint.Check(v) {
		return fmt.Errorf("config version %s is not supported by this build (want %s)", version, supportedVersions)
	}
	return nil
}
