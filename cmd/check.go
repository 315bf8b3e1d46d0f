package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/driverdata/dcvt-devkit/application"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	requirementsPath string
	upgradeFlag      bool
	jsonOutput       bool
	assumeYes        bool
	offline          bool
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check installed packages against the requirements file",
	Long: `Parse the requirements file, look up each package in the local
environment and on the package index, and report which packages are
up-to-date, outdated, not installed, or unknown.

With --upgrade, outdated and missing packages are installed via pip after
confirmation. A single pip failure is reported and the batch continues.`,
	RunE: runCheck,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	checkCmd.Flags().StringVarP(
		&requirementsPath, "requirements", "r", "requirements.txt",
		"Path to the requirements file",
	)
	checkCmd.Flags().BoolVar(
		&upgradeFlag, "upgrade", false,
		"Offer to upgrade missing/outdated packages",
	)
	checkCmd.Flags().BoolVar(
		&jsonOutput, "json", false,
		"Output results as JSON",
	)
	checkCmd.Flags().BoolVar(
		&assumeYes, "yes", false,
		"Assume yes for upgrades (no confirmation)",
	)
	checkCmd.Flags().BoolVar(
		&offline, "offline", false,
		"Skip package-index queries and use local data only",
	)
	rootCmd.AddCommand(checkCmd)
}

func runCheck(command *cobra.Command, _ []string) error {
	ctx := command.Context()

	return invoke(func(service *application.CheckService) error {
		results, err := service.Run(ctx, application.CheckOptions{
			RequirementsPath: requirementsPath,
			Offline:          offline,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			if renderErr := application.RenderJSON(os.Stdout, results); renderErr != nil {
				return renderErr
			}
		} else {
			application.RenderTable(os.Stdout, results)
		}

		if !upgradeFlag {
			return nil
		}

		outcomes := service.Upgrade(ctx, results, application.UpgradeOptions{
			AssumeYes: assumeYes,
		})
		if len(outcomes) == 0 {
			return nil
		}
		if jsonOutput {
			return application.RenderOutcomesJSON(os.Stdout, outcomes)
		}
		application.RenderOutcomesTable(os.Stdout, outcomes)
		return nil
	})
}
