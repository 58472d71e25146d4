// Flatform is a terminal demo of the "flat form" text field: a single-line
// input with a placeholder, an inline error message and a trailing
// accessory icon, driven by a read-only/editing/loading/error state machine.
//
// Usage:
//
//	flatform [command] [flags]
//
// Running without arguments launches the interactive demo.
// See 'flatform --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/flatform/internal/config"
	"github.com/muurk/flatform/internal/logging"
	"github.com/muurk/flatform/internal/version"
)

// Global flags
var (
	configPath string
	logLevel   string
	logFile    string
)

// annotationTUI marks commands that take over the terminal
const annotationTUI = "tui"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flatform",
	Short: "Flat form text field demo",
	Long: `A terminal rendition of the flat form text field.

The field has a placeholder, an inline error message and a trailing
accessory icon (loading, refresh or checkmark). In the display-states
revision it moves between read-only, editing, loading and error states.

If no command is specified, the interactive demo launches automatically.`,
	Version:     version.Version,
	Annotations: map[string]string{annotationTUI: "true"},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: runDemo,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the user config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default silent, or $"+logging.LogLevelEnvVar+")")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file (or $"+logging.LogFileEnvVar+")")

	rootCmd.AddCommand(versionCmd)
}

// initLogging sets up the global logger. Commands that own the terminal log
// to a file so the output does not garble the screen.
func initLogging(cmd *cobra.Command) error {
	path := logFile
	if path == "" && os.Getenv(logging.LogFileEnvVar) == "" && cmd.Annotations[annotationTUI] == "true" {
		p, err := config.GetLogPath()
		if err != nil {
			return err
		}
		path = p
	}
	return logging.Initialize(logLevel, path)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "flatform %s\n", version.Full())
		if version.IsDev() {
			fmt.Fprintln(out, "development build")
		}
	},
}
