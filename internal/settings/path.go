// SPDX-License-Identifier: MIT

package settings

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the name of the settings file.
const FileName = "config.json"

// DefaultPath returns config.json inside the directory of the running executable.
// Symlinks to the executable are resolved first so the file sits beside the real binary.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), FileName), nil
}
