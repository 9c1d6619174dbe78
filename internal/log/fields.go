// SPDX-License-Identifier: MIT

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldService   = "service"
	FieldVersion   = "version"
	FieldComponent = "component"
	FieldEvent     = "event"

	// Settings fields
	FieldPath     = "path"
	FieldKeyCount = "key_count"
	FieldResult   = "result"
)
