// SPDX-License-Identifier: MIT

//go:build windows

package settings

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// writeFile replaces path with data using temp file + rename.
// Windows has no fsync-then-rename guarantee, so this is best-effort atomic.
func writeFile(logger zerolog.Logger, path string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".settings-*.tmp")
	if err != nil {
		return &WriteError{Path: path, Op: "create", Err: err}
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			if err := os.Remove(tmpPath); err != nil {
				logger.Debug().Err(err).Msg("cleanup temp settings file")
			}
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return &WriteError{Path: path, Op: "write", Err: err}
	}
	if err := tmpFile.Close(); err != nil {
		return &WriteError{Path: path, Op: "close", Err: err}
	}
	tmpFile = nil

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return &WriteError{Path: path, Op: "replace", Err: err}
	}
	return nil
}
