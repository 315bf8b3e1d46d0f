// Package launcher starts the data-visualization web application: installs
// its dependencies, spawns the app runner, and opens a browser on it.
package launcher

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/pkg/browser"
	logger "github.com/sirupsen/logrus"

	"github.com/driverdata/dcvt-devkit/config"
	"github.com/driverdata/dcvt-devkit/domain"
	"github.com/driverdata/dcvt-devkit/infrastructure/pip"
)

// Launcher runs the fixed launch sequence from a config. The spawned app
// process is fire-and-forget: the launcher does not wait on it.
type Launcher struct {
	cfg       config.LauncherConfig
	installer domain.Installer

	// DryRun logs the launch sequence without side effects.
	DryRun bool

	// seams for tests
	startProcess func(ctx context.Context, pythonBinary string, args []string) error
	openBrowser  func(url string) error
	sleep        func(d time.Duration)
}

// New creates a launcher for the given configuration.
func New(cfg config.LauncherConfig, installer domain.Installer) *Launcher {
	return &Launcher{
		cfg:          cfg,
		installer:    installer,
		startProcess: startDetached,
		openBrowser:  browser.OpenURL,
		sleep:        time.Sleep,
	}
}

// Run executes the launch sequence: entry-script check, interpreter check,
// dependency install, app spawn, fixed delay, browser open. The first two
// checks are fatal; a browser failure only warns, since the app itself is
// already up.
func (l *Launcher) Run(ctx context.Context) error {
	if _, err := os.Stat(l.cfg.AppEntry); err != nil {
		return fmt.Errorf("app entry script %q not found: %w", l.cfg.AppEntry, err)
	}

	pythonBinary := l.cfg.PythonBinary
	if pythonBinary == "" {
		detected, err := pip.FindPythonBinary()
		if err != nil {
			return fmt.Errorf("no Python interpreter available: %w", err)
		}
		pythonBinary = detected
	}
	logger.Infof("Using Python interpreter: %s", pythonBinary)

	if l.DryRun {
		logger.Infof(
			"[DRY RUN] Would install %s, start %s, and open %s",
			l.cfg.Requirements, l.cfg.AppEntry, l.cfg.AppURL,
		)
		return nil
	}

	if l.cfg.SkipInstall {
		logger.Info("Skipping dependency installation (skip_install is set)")
	} else if err := l.installer.InstallRequirements(ctx, l.cfg.Requirements); err != nil {
		return fmt.Errorf("failed to install dependencies: %w", err)
	}

	args := append([]string{"-m", "streamlit", "run", l.cfg.AppEntry}, l.cfg.RunnerArgs...)
	logger.Infof("Starting application: %s %v", pythonBinary, args)

	if err := l.startProcess(ctx, pythonBinary, args); err != nil {
		return fmt.Errorf("failed to start application: %w", err)
	}

	// Heuristic delay only; the runner prints its own readiness message.
	logger.Infof("Waiting %s for the application to come up...", l.cfg.StartupDelay)
	l.sleep(time.Duration(l.cfg.StartupDelay))

	logger.Infof("Opening %s", l.cfg.AppURL)
	if err := l.openBrowser(l.cfg.AppURL); err != nil {
		logger.Warnf("Failed to open browser: %v (open %s manually)", err, l.cfg.AppURL)
	}

	return nil
}

// startDetached spawns the app runner without waiting for it, leaving its
// output attached to the terminal.
func startDetached(ctx context.Context, pythonBinary string, args []string) error {
	cmd := exec.CommandContext(ctx, pythonBinary, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return err
	}

	// Detach: the process keeps running after devkit exits.
	return cmd.Process.Release()
}
