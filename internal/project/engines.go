package project

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckEngine reports whether version satisfies constraint (an npm-style
// range such as ">= 10.18.1"). A leading "v" on version is tolerated. An
// empty constraint is always satisfied.
func CheckEngine(constraint, version string) (bool, error) {
	if strings.TrimSpace(constraint) == "" {
		return true, nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing engine constraint %q: %w", constraint, err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(version), "v"))
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	return c.Check(v), nil
}
