// Package pip talks to the external pip tool: reading installed package
// metadata and installing/upgrading packages.
package pip

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"

	logger "github.com/sirupsen/logrus"

	"github.com/driverdata/dcvt-devkit/domain"
)

// Inspector reads installed package metadata by shelling out to pip.
// It prefers `pip inspect` (pip >= 22.2) and falls back to
// `pip list --format=json` for older installations.
type Inspector struct {
	pythonBinary string
}

var _ domain.Inspector = (*Inspector)(nil)

// NewInspector creates an inspector bound to the given interpreter.
func NewInspector(pythonBinary string) *Inspector {
	return &Inspector{pythonBinary: pythonBinary}
}

// inspectReport mirrors the relevant slice of `pip inspect` output.
type inspectReport struct {
	Installed []struct {
		Metadata struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"metadata"`
	} `json:"installed"`
}

// listEntry mirrors one element of `pip list --format=json` output.
type listEntry struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// InstalledPackages returns every package visible to the interpreter,
// keyed by normalized name.
func (i *Inspector) InstalledPackages(
	ctx context.Context,
) (map[string]domain.InstalledPackage, error) {
	packages, err := i.runInspect(ctx)
	if err == nil {
		return packages, nil
	}

	logger.Debugf("pip inspect failed (%v), falling back to pip list", err)

	packages, listErr := i.runList(ctx)
	if listErr != nil {
		return nil, fmt.Errorf("failed to read installed packages: %w", listErr)
	}
	return packages, nil
}

func (i *Inspector) runInspect(ctx context.Context) (map[string]domain.InstalledPackage, error) {
	cmd := exec.CommandContext(ctx, i.pythonBinary, "-m", "pip", "inspect", "--local")
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pip inspect: %w", err)
	}
	return parseInspectOutput(output)
}

func (i *Inspector) runList(ctx context.Context) (map[string]domain.InstalledPackage, error) {
	cmd := exec.CommandContext(ctx, i.pythonBinary, "-m", "pip", "list", "--format=json")
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pip list: %w", err)
	}
	return parseListOutput(output)
}

func parseInspectOutput(output []byte) (map[string]domain.InstalledPackage, error) {
	var report inspectReport
	if err := json.Unmarshal(output, &report); err != nil {
		return nil, fmt.Errorf("failed to parse pip inspect output: %w", err)
	}

	packages := make(map[string]domain.InstalledPackage, len(report.Installed))
	for _, item := range report.Installed {
		pkg := domain.InstalledPackage{
			Name:    item.Metadata.Name,
			Version: item.Metadata.Version,
		}
		packages[domain.NormalizeName(pkg.Name)] = pkg
	}
	return packages, nil
}

func parseListOutput(output []byte) (map[string]domain.InstalledPackage, error) {
	var entries []listEntry
	if err := json.Unmarshal(output, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse pip list output: %w", err)
	}

	packages := make(map[string]domain.InstalledPackage, len(entries))
	for _, entry := range entries {
		packages[domain.NormalizeName(entry.Name)] = domain.InstalledPackage{
			Name:    entry.Name,
			Version: entry.Version,
		}
	}
	return packages, nil
}
