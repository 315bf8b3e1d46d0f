// Package requirements parses pip requirements files into domain requirements.
package requirements

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/driverdata/dcvt-devkit/domain"
)

// requirementPattern matches "name[extras]<comparator>version". Only the
// first constraint of a comma-separated range is captured; the full line is
// preserved in Requirement.Raw.
//
//nolint:gochecknoglobals // compiled once at init
var requirementPattern = regexp.MustCompile(
	`^([A-Za-z0-9][A-Za-z0-9._-]*)\s*(\[[^\]]*\])?\s*(==|>=|<=|~=|!=|>|<)?\s*([A-Za-z0-9.*+!_-]+)?`,
)

// Parse reads a requirements file and returns the requirements it lists, in
// file order. A missing or unreadable file is an error; a malformed line is
// skipped with a warning so one bad entry cannot fail the whole run.
func Parse(path string) ([]domain.Requirement, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open requirements file %q: %w", path, err)
	}
	defer file.Close()

	var reqs []domain.Requirement

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if skipLine(line) {
			continue
		}

		req, ok := parseLine(line)
		if !ok {
			logger.Warnf("Skipping malformed requirement at %s:%d: %q", path, lineNo, line)
			continue
		}
		reqs = append(reqs, req)
	}

	if scanErr := scanner.Err(); scanErr != nil {
		return nil, fmt.Errorf("failed to read requirements file %q: %w", path, scanErr)
	}

	return reqs, nil
}

// skipLine returns true for lines that carry no package constraint:
// blanks, comments, pip options, and editable/VCS/URL requirements.
func skipLine(line string) bool {
	if line == "" || strings.HasPrefix(line, "#") {
		return true
	}
	if strings.HasPrefix(line, "-") {
		// -e, -r, --index-url, and friends
		return true
	}
	if strings.Contains(line, "git+") ||
		strings.HasPrefix(line, "http://") ||
		strings.HasPrefix(line, "https://") {
		return true
	}
	return false
}

// parseLine extracts name, extras, and the first version constraint from a
// single requirement line.
func parseLine(raw string) (domain.Requirement, bool) {
	line := raw

	// Environment markers and inline comments do not affect the constraint.
	if idx := strings.Index(line, ";"); idx >= 0 {
		line = line[:idx]
	}
	if idx := strings.Index(line, " #"); idx >= 0 {
		line = line[:idx]
	}
	line = strings.TrimSpace(line)

	matches := requirementPattern.FindStringSubmatch(line)
	if matches == nil || matches[1] == "" {
		return domain.Requirement{}, false
	}

	name := matches[1]
	comparator := matches[3]
	version := matches[4]

	// A comparator without a version (or the reverse) is malformed.
	if (comparator == "") != (version == "") {
		return domain.Requirement{}, false
	}

	return domain.Requirement{
		Name:       name,
		Extras:     parseExtras(matches[2]),
		Comparator: comparator,
		Version:    version,
		Raw:        raw,
	}, true
}

func parseExtras(bracketed string) []string {
	if bracketed == "" {
		return nil
	}
	inner := strings.Trim(bracketed, "[]")
	if inner == "" {
		return nil
	}

	var extras []string
	for _, extra := range strings.Split(inner, ",") {
		if trimmed := strings.TrimSpace(extra); trimmed != "" {
			extras = append(extras, trimmed)
		}
	}
	return extras
}
