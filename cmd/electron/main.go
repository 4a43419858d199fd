package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	// build time date
	buildDate = "unknown"
)

func main() {
	var (
		configPath string
		driverName string
		prettyLog  bool
	)

	rootCmd := &cobra.Command{
		Use:   "electron SCRIPT",
		Short: "Script-driven native dialogs",
		Long: `Electron runs a JavaScript file against an embedded runtime whose global
dialog object bridges to native OS dialogs: a modal message box, an open-file
picker and a save-file picker, each usable in blocking or callback form.`,
		Version: fmt.Sprintf("%s (built: %s)", version, buildDate),
		Args:    cobra.ExactArgs(1),
		// Default to run command when no subcommand is provided
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(configPath, driverName, prettyLog, args[0])
		},
	}

	// Run flags are also available on the "run" subcommand
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to electron.yaml config file")
	rootCmd.Flags().StringVar(&driverName, "driver", "", "Dialog driver to use (overrides config file)")
	rootCmd.Flags().BoolVar(&prettyLog, "pretty", false, "Use pretty-printed logs instead of JSON")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newDriversCmd())
	rootCmd.AddCommand(newInitCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
