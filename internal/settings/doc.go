// SPDX-License-Identifier: MIT

// Package settings holds the flat key/value settings read from config.json.
//
// The file lives next to the running executable and is edited by hand between
// runs; nothing in this package writes user values back. A Store is loaded once
// and then read any number of times:
//
//	store, err := settings.New()
//	if err != nil {
//		return err
//	}
//	if err := store.Load(); err != nil {
//		return err // errors.Is(err, settings.ErrConfigFileMissing) -> run "settings init"
//	}
//	token, ok := store.Get("token")
//
// GenerateInitialConfig writes a one-entry template for the user to fill in.
package settings
