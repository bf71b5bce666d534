package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	appID     string
	rootPath  string
	themePath string
)

var rootCmd = &cobra.Command{
	Use:   "veneer-cli",
	Short: "Veneer CLI tool",
	Long: `Veneer CLI is a command-line interface for inspecting themes.

Available commands:
  list        Discover and list the themes visible to an application
  validate    Explain whether a directory is a loadable theme

Use "veneer-cli [command] --help" for more information about a specific command.`,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&appID, "app-id", "", "application identifier themes must declare (defaults to APP_ID)")
	rootCmd.PersistentFlags().StringVar(&rootPath, "root", "", "application root containing the packaged themes directory")
	rootCmd.PersistentFlags().StringVar(&themePath, "paths", "", "extra theme search paths, ';' separated (defaults to THEME_PATHS)")
}
