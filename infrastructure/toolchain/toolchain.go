// Package toolchain checks for and runs the external developer tools the
// project relies on (formatters, linters, test runner).
package toolchain

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
)

// Prerequisite is the availability report for one external tool.
type Prerequisite struct {
	Name      string
	Installed bool
	Version   string
	Required  bool
	Message   string
}

// moduleTool describes a tool invoked as `python -m <module>`.
type moduleTool struct {
	name     string
	required bool
}

// tools lists every tool doctor reports on, in display order.
//
//nolint:gochecknoglobals // fixed tool inventory
var tools = []moduleTool{
	{"pip", true},
	{"streamlit", true},
	{"black", false},
	{"isort", false},
	{"ruff", false},
	{"pytest", false},
}

//nolint:gochecknoglobals // compiled once at init
var versionPattern = regexp.MustCompile(`\d+(?:\.\d+)+`)

// CheckPrerequisites probes the interpreter and each tool module and
// returns their status, interpreter first.
func CheckPrerequisites(ctx context.Context, pythonBinary string) []Prerequisite {
	result := make([]Prerequisite, 0, len(tools)+1)
	result = append(result, checkInterpreter(ctx, pythonBinary))

	for _, tool := range tools {
		result = append(result, checkModule(ctx, pythonBinary, tool))
	}
	return result
}

func checkInterpreter(ctx context.Context, pythonBinary string) Prerequisite {
	if pythonBinary == "" {
		return Prerequisite{
			Name:     "python",
			Required: true,
			Message:  "not found",
		}
	}

	output, err := exec.CommandContext(ctx, pythonBinary, "--version").CombinedOutput()
	if err != nil {
		return Prerequisite{
			Name:     "python",
			Required: true,
			Message:  strings.TrimSpace(string(output)),
		}
	}

	return Prerequisite{
		Name:      "python",
		Installed: true,
		Required:  true,
		Version:   parseVersion(string(output)),
	}
}

func checkModule(ctx context.Context, pythonBinary string, tool moduleTool) Prerequisite {
	if pythonBinary == "" {
		return Prerequisite{Name: tool.name, Required: tool.required, Message: "no interpreter"}
	}

	cmd := exec.CommandContext(ctx, pythonBinary, "-m", tool.name, "--version")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return Prerequisite{
			Name:     tool.name,
			Required: tool.required,
			Message:  "not installed",
		}
	}

	return Prerequisite{
		Name:      tool.name,
		Installed: true,
		Required:  tool.required,
		Version:   parseVersion(string(output)),
	}
}

func parseVersion(output string) string {
	return versionPattern.FindString(firstLine(output))
}

func firstLine(s string) string {
	if idx := strings.Index(s, "\n"); idx >= 0 {
		return strings.TrimSpace(s[:idx])
	}
	return strings.TrimSpace(s)
}

// RunModule executes `python -m <module> <args...>` with inherited stdio,
// so tool output lands in the user's terminal unchanged.
func RunModule(ctx context.Context, pythonBinary, module string, args ...string) error {
	full := append([]string{"-m", module}, args...)
	logger.Debugf("Running %s %s", pythonBinary, strings.Join(full, " "))

	cmd := exec.CommandContext(ctx, pythonBinary, full...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", module, strings.Join(args, " "), err)
	}
	return nil
}

// CreateVenv creates a virtual environment at path unless one already exists.
func CreateVenv(ctx context.Context, pythonBinary, path string) error {
	if _, err := os.Stat(path); err == nil {
		logger.Infof("Virtual environment already exists at %s", path)
		return nil
	}

	if err := RunModule(ctx, pythonBinary, "venv", path); err != nil {
		return fmt.Errorf("failed to create virtual environment: %w", err)
	}

	logger.Infof("Created virtual environment at %s", path)
	return nil
}
