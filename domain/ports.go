package domain

import "context"

// Inspector looks up packages installed in the local Python environment.
type Inspector interface {
	// InstalledPackages returns every package visible to the interpreter,
	// keyed by normalized name.
	InstalledPackages(ctx context.Context) (map[string]InstalledPackage, error)
}

// Index queries a remote package index for the latest published version.
// Implementations must treat any failure as "latest unknown" at the call
// site; they never abort a whole run.
type Index interface {
	LatestVersion(ctx context.Context, name string) (*RemotePackageInfo, error)
}

// Installer abstracts the external package-management tool.
type Installer interface {
	// Upgrade installs or upgrades a single package to its latest version.
	Upgrade(ctx context.Context, name string) error

	// InstallRequirements installs everything listed in a requirements file.
	InstallRequirements(ctx context.Context, path string) error
}
