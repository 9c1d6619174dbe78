// SPDX-License-Identifier: MIT

package settings

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigFileMissing is returned by Load when config.json does not exist.
	ErrConfigFileMissing = errors.New("config.json not found")

	// ErrConfigParse classifies config.json content that is not a JSON object of strings.
	// Use errors.Is(err, ErrConfigParse) instead of string matching.
	ErrConfigParse = errors.New("config parse error")

	// ErrConfigWrite classifies failures to write config.json.
	ErrConfigWrite = errors.New("config write error")
)

// ParseError describes why config.json could not be decoded.
// Key is set when a single value was rejected.
type ParseError struct {
	Path string
	Key  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s: %s: key %q: %v", ErrConfigParse, e.Path, e.Key, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrConfigParse, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports ErrConfigParse as a match.
func (e *ParseError) Is(target error) bool { return target == ErrConfigParse }

// WriteError describes a failed write of config.json.
type WriteError struct {
	Path string
	Op   string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", ErrConfigWrite, e.Op, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Is reports ErrConfigWrite as a match.
func (e *WriteError) Is(target error) bool { return target == ErrConfigWrite }
