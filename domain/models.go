package domain

// Status classifies a requirement after comparing the installed version
// against the latest known version.
type Status string

const (
	// StatusUpToDate means the installed version is at least the latest known version.
	StatusUpToDate Status = "up-to-date"
	// StatusOutdated means a newer version than the installed one is available.
	StatusOutdated Status = "outdated"
	// StatusNotInstalled means the package is absent from the local environment.
	StatusNotInstalled Status = "not-installed"
	// StatusUnknown means the installed version could not be compared
	// (no remote data available, or the versions do not parse).
	StatusUnknown Status = "unknown"
)

// Requirement is one parsed line of a requirements file.
type Requirement struct {
	Name       string   // Package name as written, extras stripped
	Extras     []string // Optional extras, e.g. requests[security]
	Comparator string   // "==", ">=", "<=", ">", "<", "~=", "!=" or empty
	Version    string   // Constraint version; empty when unconstrained
	Raw        string   // Original line, for display and reporting
}

// InstalledPackage is a package found in the local environment.
type InstalledPackage struct {
	Name    string
	Version string
}

// RemotePackageInfo is the latest published version reported by the package index.
type RemotePackageInfo struct {
	Name   string
	Latest string
}

// Result pairs a requirement with what was found locally and remotely.
// Installed and Latest are empty when absent/unknown.
type Result struct {
	Name      string `json:"name"`
	Spec      string `json:"spec"`
	Installed string `json:"installed,omitempty"`
	Latest    string `json:"latest,omitempty"`
	Status    Status `json:"status"`
}

// NeedsUpgrade returns true when the package should be offered for
// installation or upgrade.
func (r Result) NeedsUpgrade() bool {
	return r.Status == StatusOutdated || r.Status == StatusNotInstalled
}

// UpgradeOutcome reports the installer result for a single package.
type UpgradeOutcome struct {
	Name  string `json:"name"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}
