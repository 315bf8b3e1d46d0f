package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/driverdata/dcvt-devkit/infrastructure/toolchain"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Report availability of required and optional developer tools",
	RunE:  runDoctor,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(command *cobra.Command, _ []string) error {
	ctx := command.Context()

	return invoke(func(binary PythonBinary) error {
		prereqs := toolchain.CheckPrerequisites(ctx, string(binary))

		ok := color.New(color.FgGreen).SprintFunc()
		missing := color.New(color.FgRed).SprintFunc()
		optional := color.New(color.FgYellow).SprintFunc()

		missingRequired := 0
		for _, p := range prereqs {
			switch {
			case p.Installed:
				fmt.Printf("%s %-12s %s\n", ok("✓"), p.Name, p.Version)
			case p.Required:
				missingRequired++
				fmt.Printf("%s %-12s %s\n", missing("✗"), p.Name, p.Message)
			default:
				fmt.Printf("%s %-12s %s (optional)\n", optional("-"), p.Name, p.Message)
			}
		}

		if missingRequired > 0 {
			return fmt.Errorf("%d required tool(s) missing", missingRequired)
		}
		return nil
	})
}
