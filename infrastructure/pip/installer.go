package pip

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	logger "github.com/sirupsen/logrus"

	"github.com/driverdata/dcvt-devkit/domain"
)

// Installer runs pip install commands through the bound interpreter.
// Output is streamed to the user's terminal so pip progress stays visible.
type Installer struct {
	pythonBinary string
}

var _ domain.Installer = (*Installer)(nil)

// NewInstaller creates an installer bound to the given interpreter.
func NewInstaller(pythonBinary string) *Installer {
	return &Installer{pythonBinary: pythonBinary}
}

// Upgrade installs or upgrades a single package to its latest version.
func (i *Installer) Upgrade(ctx context.Context, name string) error {
	logger.Infof("Running %s -m pip install --upgrade %s", i.pythonBinary, name)

	if err := i.run(ctx, "install", "--upgrade", name); err != nil {
		return fmt.Errorf("pip install --upgrade %s: %w", name, err)
	}
	return nil
}

// InstallRequirements installs everything listed in a requirements file.
func (i *Installer) InstallRequirements(ctx context.Context, path string) error {
	logger.Infof("Installing requirements from %s", path)

	if err := i.run(ctx, "install", "-r", path); err != nil {
		return fmt.Errorf("pip install -r %s: %w", path, err)
	}
	return nil
}

func (i *Installer) run(ctx context.Context, args ...string) error {
	pipArgs := append([]string{"-m", "pip"}, args...)
	cmd := exec.CommandContext(ctx, i.pythonBinary, pipArgs...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
