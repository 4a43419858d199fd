package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iw/electron/internal/driver"
)

// newDriversCmd creates the drivers command
func newDriversCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "drivers",
		Short: "List registered dialog drivers",
		Long: `List the dialog drivers this build can present dialogs with. Select one
with the --driver flag, the ELECTRON_DRIVER environment variable, or the
driver key in electron.yaml.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := driver.DefaultRegistry()
			if err != nil {
				return fmt.Errorf("failed to build driver registry: %w", err)
			}

			names := registry.Names()
			if jsonOutput {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(names)
			}

			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
