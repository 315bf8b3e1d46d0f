// Package application orchestrates the dependency check and upgrade flows.
package application

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/driverdata/dcvt-devkit/domain"
	"github.com/driverdata/dcvt-devkit/infrastructure/requirements"
)

// CheckOptions holds runtime options for a single check run.
type CheckOptions struct {
	RequirementsPath string
	Offline          bool // Skip package-index queries entirely
}

// UpgradeOptions holds runtime options for the upgrade flow.
type UpgradeOptions struct {
	AssumeYes bool
}

// ConfirmFunc asks the user a yes/no question and returns the answer.
type ConfirmFunc func(prompt string) bool

// CheckService compares a requirements file against the local environment
// and the package index, and optionally upgrades what is behind.
type CheckService struct {
	inspector domain.Inspector
	index     domain.Index
	installer domain.Installer

	// Confirm is consulted before upgrading unless AssumeYes is set.
	// Replaceable in tests.
	Confirm ConfirmFunc
}

// NewCheckService creates a service over the given adapters. The index may
// be nil, in which case every latest version is reported unknown.
func NewCheckService(
	inspector domain.Inspector,
	index domain.Index,
	installer domain.Installer,
) *CheckService {
	return &CheckService{
		inspector: inspector,
		index:     index,
		installer: installer,
		Confirm:   terminalConfirm,
	}
}

// Run parses the requirements file and produces one result per requirement,
// in file order. Only a missing or unreadable requirements file is fatal;
// lookup failures degrade to StatusUnknown.
func (s *CheckService) Run(ctx context.Context, opts CheckOptions) ([]domain.Result, error) {
	reqs, err := requirements.Parse(opts.RequirementsPath)
	if err != nil {
		return nil, err
	}

	logger.Debugf("Parsed %d requirements from %s", len(reqs), opts.RequirementsPath)

	installed, localKnown := s.loadInstalled(ctx)

	results := make([]domain.Result, 0, len(reqs))
	for _, req := range reqs {
		results = append(results, s.checkOne(ctx, req, installed, localKnown, opts))
	}
	return results, nil
}

// loadInstalled reads the local environment. A total failure (e.g. pip
// missing) is non-fatal: every result then degrades to unknown.
func (s *CheckService) loadInstalled(
	ctx context.Context,
) (map[string]domain.InstalledPackage, bool) {
	installed, err := s.inspector.InstalledPackages(ctx)
	if err != nil {
		logger.Warnf("Failed to read installed packages: %v (statuses will be unknown)", err)
		return nil, false
	}
	return installed, true
}

func (s *CheckService) checkOne(
	ctx context.Context,
	req domain.Requirement,
	installed map[string]domain.InstalledPackage,
	localKnown bool,
	opts CheckOptions,
) domain.Result {
	result := domain.Result{
		Name:   req.Name,
		Spec:   strings.TrimSpace(req.Raw),
		Status: domain.StatusUnknown,
	}

	pkg, found := installed[domain.NormalizeName(req.Name)]
	if localKnown && !found {
		// Absent locally is conclusive regardless of what the index says.
		result.Status = domain.StatusNotInstalled
		return result
	}
	if found {
		result.Installed = pkg.Version

		if !domain.Satisfies(pkg.Version, req.Comparator, req.Version) {
			logger.Warnf(
				"%s %s is installed but does not satisfy %q",
				req.Name, pkg.Version, result.Spec,
			)
		}
	}

	result.Latest = s.lookupLatest(ctx, req.Name, opts)

	if result.Installed != "" && result.Latest != "" {
		if domain.IsNewer(result.Installed, result.Latest) {
			result.Status = domain.StatusOutdated
		} else {
			result.Status = domain.StatusUpToDate
		}
	}

	return result
}

// lookupLatest queries the index for the latest version, returning "" when
// the index is disabled or the query fails.
func (s *CheckService) lookupLatest(ctx context.Context, name string, opts CheckOptions) string {
	if s.index == nil || opts.Offline {
		return ""
	}

	info, err := s.index.LatestVersion(ctx, name)
	if err != nil {
		logger.Debugf("Could not fetch latest version of %s: %v", name, err)
		return ""
	}
	return info.Latest
}

// Upgrade installs every not-installed or outdated package from the given
// results, one pip invocation per package. A single installer failure is
// recorded and the batch continues.
func (s *CheckService) Upgrade(
	ctx context.Context,
	results []domain.Result,
	opts UpgradeOptions,
) []domain.UpgradeOutcome {
	var candidates []string
	for _, result := range results {
		if result.NeedsUpgrade() {
			candidates = append(candidates, result.Name)
		}
	}

	if len(candidates) == 0 {
		logger.Info("No packages to upgrade or install.")
		return nil
	}

	logger.Infof("Packages to install/upgrade: %s", strings.Join(candidates, ", "))

	if !opts.AssumeYes {
		prompt := fmt.Sprintf(
			"Proceed with pip install --upgrade for %d package(s)? [y/N]: ",
			len(candidates),
		)
		if !s.Confirm(prompt) {
			logger.Info("Aborted by user.")
			return nil
		}
	}

	outcomes := make([]domain.UpgradeOutcome, 0, len(candidates))
	for _, name := range candidates {
		outcome := domain.UpgradeOutcome{Name: name, OK: true}
		if err := s.installer.Upgrade(ctx, name); err != nil {
			logger.Errorf("Failed to upgrade %s: %v", name, err)
			outcome.OK = false
			outcome.Error = err.Error()
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes
}

// terminalConfirm reads a yes/no answer from stdin.
func terminalConfirm(prompt string) bool {
	fmt.Print(prompt)

	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
