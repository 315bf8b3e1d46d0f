package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driverdata/dcvt-devkit/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "devkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	t.Run("should fill every launcher field", func(t *testing.T) {
		t.Parallel()

		// when
		cfg := config.Default()

		// then
		assert.Equal(t, config.DefaultAppEntry, cfg.Launcher.AppEntry)
		assert.Equal(t, config.DefaultRequirements, cfg.Launcher.Requirements)
		assert.Equal(t, config.DefaultAppURL, cfg.Launcher.AppURL)
		assert.Equal(t, config.DefaultStartupDelay, cfg.Launcher.StartupDelay)
		assert.Empty(t, cfg.Launcher.PythonBinary)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("should fail when the file does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.yaml")

		// when
		cfg, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("should fail on malformed YAML", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "launcher: [not a map")

		// when
		cfg, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("should apply file values over defaults", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, `
launcher:
  app_entry: app.py
  app_url: http://localhost:9000
  startup_delay: 5s
  skip_install: true
  runner_args: ["--server.headless", "true"]
`)

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "app.py", cfg.Launcher.AppEntry)
		assert.Equal(t, "http://localhost:9000", cfg.Launcher.AppURL)
		assert.Equal(t, config.Duration(5*time.Second), cfg.Launcher.StartupDelay)
		assert.True(t, cfg.Launcher.SkipInstall)
		assert.Equal(t, []string{"--server.headless", "true"}, cfg.Launcher.RunnerArgs)
		// untouched fields keep their defaults
		assert.Equal(t, config.DefaultRequirements, cfg.Launcher.Requirements)
	})

	t.Run("should restore defaults for empty fields", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "launcher:\n  app_entry: \"\"\n")

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, config.DefaultAppEntry, cfg.Launcher.AppEntry)
	})

	t.Run("should reject an unreasonable startup delay", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "launcher:\n  startup_delay: 10m\n")

		// when
		cfg, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Nil(t, cfg)
	})
}
