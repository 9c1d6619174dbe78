// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(newStore storeFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that config.json exists and parses",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cmd, newStore)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid (%d keys)\n", store.Path(), store.Len())
			return nil
		},
	}
}
