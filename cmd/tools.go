package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/driverdata/dcvt-devkit/infrastructure/toolchain"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var venvPath string

//nolint:gochecknoglobals // required by cobra CLI pattern
var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Format the Python codebase with black and isort",
	RunE: func(command *cobra.Command, _ []string) error {
		return withPython(command, func(ctx context.Context, binary string) error {
			if err := toolchain.RunModule(
				ctx, binary, "black", "--line-length", "88", "--quiet", ".",
			); err != nil {
				return err
			}
			return toolchain.RunModule(ctx, binary, "isort", ".")
		})
	},
}

//nolint:gochecknoglobals // required by cobra CLI pattern
var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint the Python codebase with ruff",
	RunE: func(command *cobra.Command, _ []string) error {
		return withPython(command, func(ctx context.Context, binary string) error {
			return toolchain.RunModule(ctx, binary, "ruff", "check", ".")
		})
	},
}

//nolint:gochecknoglobals // required by cobra CLI pattern
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run the Python test suite with pytest",
	RunE: func(command *cobra.Command, _ []string) error {
		return withPython(command, func(ctx context.Context, binary string) error {
			return toolchain.RunModule(ctx, binary, "pytest", "-q")
		})
	},
}

//nolint:gochecknoglobals // required by cobra CLI pattern
var venvCmd = &cobra.Command{
	Use:   "venv",
	Short: "Create a local virtual environment",
	RunE: func(command *cobra.Command, _ []string) error {
		return withPython(command, func(ctx context.Context, binary string) error {
			return toolchain.CreateVenv(ctx, binary, venvPath)
		})
	},
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	venvCmd.Flags().StringVar(&venvPath, "path", ".venv", "Virtual environment directory")

	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(venvCmd)
}

// withPython resolves the interpreter through the container and fails fast
// when none exists; the developer helpers are useless without one.
func withPython(
	command *cobra.Command,
	fn func(ctx context.Context, binary string) error,
) error {
	ctx := command.Context()

	return invoke(func(binary PythonBinary) error {
		if binary == "" {
			return errors.New("no Python interpreter found; install Python 3 first")
		}
		return fn(ctx, string(binary))
	})
}
