package cmd

import (
	"github.com/fatih/color"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	verbose    bool
	noColor    bool
	configPath string
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var rootCmd = &cobra.Command{
	Use:   "devkit",
	Short: "Developer toolkit for the Data Combiner & Vendor Tagger app",
	Long: `Utilities around the Data Combiner & Vendor Tagger web application:

  devkit check    Compare requirements.txt against installed and latest versions
  devkit launch   Install dependencies, start the app, and open a browser
  devkit doctor   Report availability of required developer tools
  devkit fmt      Format the Python codebase (black + isort)
  devkit lint     Lint the Python codebase (ruff)
  devkit test     Run the Python test suite (pytest)
  devkit venv     Create a local virtual environment`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
		logger.SetFormatter(&logger.TextFormatter{
			ForceColors:   !noColor,
			FullTimestamp: true,
		})
		if verbose {
			logger.SetLevel(logger.DebugLevel)
		}
		if noColor {
			color.NoColor = true
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false,
		"Enable verbose output",
	)
	rootCmd.PersistentFlags().BoolVar(
		&noColor, "no-color", false,
		"Disable colored output",
	)
	rootCmd.PersistentFlags().StringVarP(
		&configPath, "config", "c", "",
		"Path to config file (default: auto-detect)",
	)
}
