// Package testdoubles provides test doubles (spies, stubs, dummies) for domain
// interfaces. These are hand-crafted implementations — no mock frameworks.
package testdoubles

import (
	"context"
	"errors"

	"github.com/driverdata/dcvt-devkit/domain"
)

//nolint:gochecknoglobals // sentinel shared by StubIndex lookups
var errNotFound = errors.New("package not found in index")

// ---------------------------------------------------------------------------
// SpyInspector
// ---------------------------------------------------------------------------

// SpyInspector implements domain.Inspector as a configurable spy.
type SpyInspector struct {
	// Packages is returned keyed by normalized name.
	Packages map[string]domain.InstalledPackage
	// Err, when set, is returned instead.
	Err error

	// spy: number of calls
	Calls int
}

var _ domain.Inspector = (*SpyInspector)(nil)

func (s *SpyInspector) InstalledPackages(
	_ context.Context,
) (map[string]domain.InstalledPackage, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Packages, nil
}

// ---------------------------------------------------------------------------
// StubIndex
// ---------------------------------------------------------------------------

// StubIndex implements domain.Index from a fixed version map.
type StubIndex struct {
	// Latest maps package name (as queried) to the latest version.
	Latest map[string]string
	// Err, when set, is returned for every lookup.
	Err error

	// spy: names that were queried
	Queried []string
}

var _ domain.Index = (*StubIndex)(nil)

func (s *StubIndex) LatestVersion(
	_ context.Context,
	name string,
) (*domain.RemotePackageInfo, error) {
	s.Queried = append(s.Queried, name)
	if s.Err != nil {
		return nil, s.Err
	}
	if version, ok := s.Latest[name]; ok {
		return &domain.RemotePackageInfo{Name: name, Latest: version}, nil
	}
	return nil, errNotFound
}

// ---------------------------------------------------------------------------
// SpyInstaller
// ---------------------------------------------------------------------------

// SpyInstaller implements domain.Installer, recording every invocation.
type SpyInstaller struct {
	// FailFor lists package names whose upgrade should fail.
	FailFor map[string]error
	// RequirementsErr, when set, fails InstallRequirements.
	RequirementsErr error

	// spy: inputs received
	Upgraded          []string
	RequirementsPaths []string
}

var _ domain.Installer = (*SpyInstaller)(nil)

func (s *SpyInstaller) Upgrade(_ context.Context, name string) error {
	s.Upgraded = append(s.Upgraded, name)
	if err, ok := s.FailFor[name]; ok {
		return err
	}
	return nil
}

func (s *SpyInstaller) InstallRequirements(_ context.Context, path string) error {
	s.RequirementsPaths = append(s.RequirementsPaths, path)
	return s.RequirementsErr
}
