// Package config loads devkit settings from a YAML file, with sensible
// defaults when no file exists.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults for the launcher. The app URL matches Streamlit's default port.
const (
	DefaultAppEntry     = "data_combiner_vendor_tagger.py"
	DefaultRequirements = "requirements.txt"
	DefaultAppURL       = "http://localhost:8501"
	DefaultStartupDelay = Duration(3 * time.Second)
)

// Duration wraps time.Duration so YAML values like "5s" parse.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("duration must be a string like \"5s\": %w", err)
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}

	*d = Duration(parsed)
	return nil
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// Config is the top-level configuration for devkit.
type Config struct {
	Launcher LauncherConfig `yaml:"launcher"`
}

// LauncherConfig describes how to start the web application.
type LauncherConfig struct {
	PythonBinary string   `yaml:"python_binary"` // Empty means auto-detect
	AppEntry     string   `yaml:"app_entry"`     // Script passed to the app runner
	Requirements string   `yaml:"requirements"`  // Requirements file to install first
	AppURL       string   `yaml:"app_url"`       // URL opened in the browser
	StartupDelay Duration `yaml:"startup_delay"` // Wait before opening the browser
	SkipInstall  bool     `yaml:"skip_install"`  // Skip the pip install step
	RunnerArgs   []string `yaml:"runner_args"`   // Extra args for the app runner
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Launcher: LauncherConfig{
			AppEntry:     DefaultAppEntry,
			Requirements: DefaultRequirements,
			AppURL:       DefaultAppURL,
			StartupDelay: DefaultStartupDelay,
		},
	}
}

// Load reads and parses a configuration file, filling unset fields with
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	cfg := Default()
	if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, unmarshalErr)
	}

	applyDefaults(cfg)

	if validateErr := validate(cfg); validateErr != nil {
		return nil, validateErr
	}

	return cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".devkit.yaml",
		".devkit.yml",
		"devkit.yaml",
		"devkit.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// applyDefaults restores defaults for fields an explicit file left empty.
func applyDefaults(cfg *Config) {
	if cfg.Launcher.AppEntry == "" {
		cfg.Launcher.AppEntry = DefaultAppEntry
	}
	if cfg.Launcher.Requirements == "" {
		cfg.Launcher.Requirements = DefaultRequirements
	}
	if cfg.Launcher.AppURL == "" {
		cfg.Launcher.AppURL = DefaultAppURL
	}
	if cfg.Launcher.StartupDelay <= 0 {
		cfg.Launcher.StartupDelay = DefaultStartupDelay
	}
}

// validate checks for values no run could succeed with.
func validate(cfg *Config) error {
	if cfg.Launcher.StartupDelay > Duration(time.Minute) {
		return fmt.Errorf(
			"launcher.startup_delay %s is unreasonably long (max 1m)",
			cfg.Launcher.StartupDelay,
		)
	}
	return nil
}
