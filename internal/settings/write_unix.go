// SPDX-License-Identifier: MIT

//go:build !windows

package settings

import (
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"
)

// writeFile replaces path with data using renameio: the content is written to a
// temp file in the same directory, fsynced, then renamed over the target.
func writeFile(logger zerolog.Logger, path string, data []byte) error {
	pendingFile, err := renameio.NewPendingFile(path,
		renameio.WithTempDir(filepath.Dir(path)),
		renameio.WithPermissions(filePerm),
	)
	if err != nil {
		return &WriteError{Path: path, Op: "create", Err: err}
	}
	defer func() {
		// No-op once committed
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug().Err(err).Msg("cleanup pending settings file")
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return &WriteError{Path: path, Op: "write", Err: err}
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return &WriteError{Path: path, Op: "replace", Err: err}
	}
	return nil
}
