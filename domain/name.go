package domain

import (
	"regexp"
	"strings"
)

// nameSeparators matches runs of the characters the package index treats
// as equivalent in project names.
//
//nolint:gochecknoglobals // compiled once at init
var nameSeparators = regexp.MustCompile(`[-_.]+`)

// NormalizeName canonicalizes a package name the way the index does:
// lowercase, with runs of "-", "_" and "." collapsed to a single "-".
// "Flask_SQLAlchemy" and "flask.sqlalchemy" both normalize to
// "flask-sqlalchemy".
func NormalizeName(name string) string {
	return nameSeparators.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}
