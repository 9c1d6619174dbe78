// SPDX-License-Identifier: MIT

package version

import "fmt"

var (
	// Version is the current application version.
	// It is populated by the build system via ldflags.
	Version = "dev"

	// Commit is the git short hash of the build.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// String formats the build information for display.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
