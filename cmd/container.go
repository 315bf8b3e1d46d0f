package cmd

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"go.uber.org/dig"

	"github.com/driverdata/dcvt-devkit/application"
	"github.com/driverdata/dcvt-devkit/config"
	"github.com/driverdata/dcvt-devkit/domain"
	"github.com/driverdata/dcvt-devkit/infrastructure/launcher"
	"github.com/driverdata/dcvt-devkit/infrastructure/pip"
	"github.com/driverdata/dcvt-devkit/infrastructure/pypi"
)

// PythonBinary is the resolved interpreter path. Empty when none was found:
// commands that strictly need one fail on their own terms, while the
// checker degrades to unknown statuses.
type PythonBinary string

// buildContainer wires the configuration, adapters, and services the
// command handlers invoke.
func buildContainer() (*dig.Container, error) {
	container := dig.New()

	providers := []any{
		provideConfig,
		providePythonBinary,
		provideInspector,
		provideInstaller,
		provideIndex,
		provideCheckService,
		provideLauncher,
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return nil, fmt.Errorf("failed to register provider: %w", err)
		}
	}

	return container, nil
}

// invoke builds the container and runs fn with its dependencies injected.
func invoke(fn any) error {
	container, err := buildContainer()
	if err != nil {
		return err
	}
	//nolint:wrapcheck // dig surfaces the handler's own error unchanged
	return container.Invoke(fn)
}

func provideConfig() *config.Config {
	path := configPath
	if path == "" {
		found, err := config.FindConfigFile()
		if err != nil {
			logger.Debug("No config file found, using defaults")
			return config.Default()
		}
		path = found
	}

	cfg, err := config.Load(path)
	if err != nil {
		logger.Warnf("Failed to load config %q: %v (using defaults)", path, err)
		return config.Default()
	}

	logger.Debugf("Using config file: %s", path)
	return cfg
}

func providePythonBinary(cfg *config.Config) PythonBinary {
	if cfg.Launcher.PythonBinary != "" {
		return PythonBinary(cfg.Launcher.PythonBinary)
	}

	binary, err := pip.FindPythonBinary()
	if err != nil {
		logger.Warnf("No Python interpreter found: %v", err)
		return ""
	}
	return PythonBinary(binary)
}

func provideInspector(binary PythonBinary) domain.Inspector {
	return pip.NewInspector(string(binary))
}

func provideInstaller(binary PythonBinary) domain.Installer {
	return pip.NewInstaller(string(binary))
}

func provideIndex() domain.Index {
	return pypi.New()
}

func provideCheckService(
	inspector domain.Inspector,
	index domain.Index,
	installer domain.Installer,
) *application.CheckService {
	return application.NewCheckService(inspector, index, installer)
}

func provideLauncher(cfg *config.Config, installer domain.Installer) *launcher.Launcher {
	return launcher.New(cfg.Launcher, installer)
}
