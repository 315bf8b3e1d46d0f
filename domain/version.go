package domain

import (
	"strings"

	mmsemver "github.com/Masterminds/semver/v3"
	"golang.org/x/mod/semver"
)

// CompareVersions orders two version strings semantically: negative when
// a < b, zero when equal, positive when a > b. It tolerates the loose
// two-segment versions common on PyPI ("21.3"). When neither semver parser
// accepts the input, it falls back to plain string ordering.
func CompareVersions(a, b string) int {
	va, errA := mmsemver.NewVersion(strings.TrimSpace(a))
	vb, errB := mmsemver.NewVersion(strings.TrimSpace(b))
	if errA == nil && errB == nil {
		return va.Compare(vb)
	}

	na := normalizeVersion(a)
	nb := normalizeVersion(b)
	if semver.IsValid(na) && semver.IsValid(nb) {
		return semver.Compare(na, nb)
	}

	return strings.Compare(a, b)
}

// IsNewer returns true when candidate is strictly newer than current.
func IsNewer(current, candidate string) bool {
	return CompareVersions(candidate, current) > 0
}

// Satisfies reports whether the installed version meets a requirement
// constraint. An empty comparator always satisfies. Constraints that do
// not parse are treated as satisfied; the checker's job is reporting
// freshness, not enforcing pins.
func Satisfies(installed, comparator, version string) bool {
	if comparator == "" || version == "" {
		return true
	}

	constraint, err := mmsemver.NewConstraint(constraintExpr(comparator, version))
	if err != nil {
		return true
	}

	v, err := mmsemver.NewVersion(strings.TrimSpace(installed))
	if err != nil {
		return true
	}

	return constraint.Check(v)
}

// constraintExpr translates a requirements-file comparator into constraint
// syntax. "~=" (compatible release) maps to the tilde range over the same
// segments, which matches its intent for the two- and three-segment
// versions seen in practice.
func constraintExpr(comparator, version string) string {
	switch comparator {
	case "==":
		return "= " + version
	case "~=":
		return "~" + version
	default:
		return comparator + " " + version
	}
}

// normalizeVersion ensures the 'v' prefix required by golang.org/x/mod.
func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
