// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newDumpCmd(newStore storeFactory) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print all settings",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			if format != "json" && format != "yaml" && format != "yml" {
				return usageError{fmt.Errorf("unsupported format: %s (use json or yaml)", format)}
			}

			store, err := loadStore(cmd, newStore)
			if err != nil {
				return err
			}
			values := store.Snapshot()

			out := cmd.OutOrStdout()
			switch format {
			case "yaml", "yml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(map[string]string(values)); err != nil {
					return fmt.Errorf("encode YAML: %w", err)
				}
				return enc.Close()
			default:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(values); err != nil {
					return fmt.Errorf("encode JSON: %w", err)
				}
				return nil
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")
	return cmd
}
