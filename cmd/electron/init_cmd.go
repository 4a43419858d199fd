package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iw/electron/internal/config"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter electron.yaml in the current directory",
		Long: `Write an electron.yaml project config with the default settings. Edit it
to pick a dialog driver, a default file-picker path, and log settings. An
existing file is not overwritten unless --force is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.GetProjectConfigPath()
			if err != nil {
				return err
			}

			if _, statErr := os.Stat(path); statErr == nil && !force {
				return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
			}

			if err := config.Default().Save(path); err != nil {
				return err
			}

			fmt.Printf("Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}
