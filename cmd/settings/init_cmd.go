// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
)

func newInitCmd(newStore storeFactory) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a template config.json",
		Long: "Write config.json beside the executable with a single placeholder entry.\n" +
			"Replace it with real settings (for example token and tool paths) by hand.",
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore()
			if err != nil {
				return err
			}

			if !force {
				_, err := os.Stat(store.Path())
				switch {
				case err == nil:
					fmt.Fprintf(cmd.ErrOrStderr(), "%s already exists; use --force to overwrite it\n", store.Path())
					return errReported
				case !errors.Is(err, fs.ErrNotExist):
					return fmt.Errorf("stat %s: %w", store.Path(), err)
				}
			}

			if err := store.GenerateInitialConfig(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", store.Path())
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config.json")
	return cmd
}
