package tx

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrToolTooOld is returned by CheckVersion when the installed client is
// older than the configured minimum.
var ErrToolTooOld = errors.New("transifex client is too old")

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
// Handles "v" prefix tolerance (strips leading "v" before parsing).
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// CheckVersion returns ErrToolTooOld when current is older than minimum.
// An empty minimum disables the check.
func CheckVersion(current, minimum string) error {
	if minimum == "" {
		return nil
	}
	cmp, err := CompareVersions(current, minimum)
	if err != nil {
		return err
	}
	if cmp < 0 {
		return fmt.Errorf("%w: have %s, need %s or newer", ErrToolTooOld, current, minimum)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
