package cmd

import (
	"github.com/spf13/cobra"

	"github.com/driverdata/dcvt-devkit/infrastructure/launcher"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var launchDryRun bool

//nolint:gochecknoglobals // required by cobra CLI pattern
var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Install dependencies, start the web app, and open a browser",
	Long: `Run the full launch sequence for the Data Combiner & Vendor Tagger
application: verify the entry script and a Python interpreter exist,
install the requirements file via pip, start the Streamlit app in the
background, wait briefly, and open the app URL in the default browser.

Paths, URL, and delay come from the devkit config file when present.`,
	RunE: runLaunch,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	launchCmd.Flags().BoolVar(
		&launchDryRun, "dry-run", false,
		"Show the launch sequence without starting anything",
	)
	rootCmd.AddCommand(launchCmd)
}

func runLaunch(command *cobra.Command, _ []string) error {
	ctx := command.Context()

	return invoke(func(l *launcher.Launcher) error {
		l.DryRun = launchDryRun
		return l.Run(ctx)
	})
}
