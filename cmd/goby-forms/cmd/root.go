package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goby-forms",
	Short: "Goby Forms demo server",
	Long: `Goby Forms serves two small form pages that demonstrate the
Post/Redirect/Get pattern and password field handling.

Available commands:
  serve      Start the HTTP server
  routes     Print the registered routes
  version    Print the version

Use "goby-forms [command] --help" for more information about a specific command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute() {
	os.Exit(exitCode(rootCmd.Execute()))
}

// exitCode logs a command failure and maps it to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	slog.Error("command failed", "error", err)
	return 1
}
