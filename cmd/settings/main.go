// SPDX-License-Identifier: MIT

// settings reads and generates the config.json that sits beside the executable.
//
// Usage:
//
//	settings init [--force]
//	settings get KEY [--default VALUE]
//	settings check
//	settings dump [--format=json|yaml]
//	settings version
//
// Exit codes:
//   - 0: success
//   - 1: configuration error (missing file, parse error, key not found)
//   - 2: usage error
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	xglog "github.com/ManuGH/settings/internal/log"
	"github.com/ManuGH/settings/internal/settings"
	"github.com/ManuGH/settings/internal/version"
	"github.com/spf13/cobra"
)

// storeFactory builds the store a command operates on.
type storeFactory func() (*settings.Store, error)

// usageError marks errors that should exit with code 2.
type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

// errReported is returned after a command already printed its own diagnostics.
var errReported = errors.New("reported")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, defaultStore))
}

func defaultStore() (*settings.Store, error) {
	return settings.New()
}

func run(args []string, stdout, stderr io.Writer, newStore storeFactory) int {
	root := newRootCmd(stdout, stderr, newStore)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return 0
	}

	var uerr usageError
	if errors.As(err, &uerr) {
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		_ = root.Usage()
		return 2
	}
	if !errors.Is(err, errReported) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return 1
}

func newRootCmd(stdout, stderr io.Writer, newStore storeFactory) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "settings",
		Short:         "Read and generate config.json beside the executable",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			xglog.Configure(xglog.Config{
				Level:   logLevel,
				Output:  stderr,
				Service: "settings",
				Version: version.Version,
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); defaults to $LOG_LEVEL or warn")

	root.AddCommand(
		newInitCmd(newStore),
		newGetCmd(newStore),
		newCheckCmd(newStore),
		newDumpCmd(newStore),
		newVersionCmd(),
	)
	return root
}

// exactArgs wraps cobra.ExactArgs so arity mistakes exit as usage errors.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// loadStore builds and loads the store, printing a remediation hint on failure.
func loadStore(cmd *cobra.Command, newStore storeFactory) (*settings.Store, error) {
	store, err := newStore()
	if err != nil {
		return nil, err
	}
	if err := store.Load(); err != nil {
		w := cmd.ErrOrStderr()
		fmt.Fprintf(w, "Configuration error in %s:\n  %v\n", store.Path(), err)
		if errors.Is(err, settings.ErrConfigFileMissing) {
			fmt.Fprintln(w, "Run \"settings init\" to write a template, then edit it.")
		}
		return nil, errReported
	}
	return store, nil
}
