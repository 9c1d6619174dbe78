// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGetCmd(newStore storeFactory) *cobra.Command {
	var defaultValue string

	cmd := &cobra.Command{
		Use:   "get KEY",
		Short: "Print the value of a setting",
		Long:  "Print the value of KEY. Without --default a missing key exits with status 1.",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cmd, newStore)
			if err != nil {
				return err
			}

			key := args[0]
			value, ok := store.Get(key)
			if !ok {
				if !cmd.Flags().Changed("default") {
					fmt.Fprintf(cmd.ErrOrStderr(), "key %q not found in %s\n", key, store.Path())
					return errReported
				}
				value = defaultValue
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
	cmd.Flags().StringVar(&defaultValue, "default", "", "value to print when KEY is not set")
	return cmd
}
