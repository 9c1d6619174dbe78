// SPDX-License-Identifier: MIT

package settings

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	cause := errors.New("value must be a string, got number")

	withKey := &ParseError{Path: "/opt/app/config.json", Key: "port", Err: cause}
	assert.Equal(t, `config parse error: /opt/app/config.json: key "port": value must be a string, got number`, withKey.Error())
	assert.ErrorIs(t, withKey, ErrConfigParse)
	assert.ErrorIs(t, withKey, cause)
	assert.NotErrorIs(t, withKey, ErrConfigWrite)

	noKey := &ParseError{Path: "/opt/app/config.json", Err: errors.New("empty document")}
	assert.Equal(t, "config parse error: /opt/app/config.json: empty document", noKey.Error())
}

func TestWriteError(t *testing.T) {
	err := &WriteError{Path: "/ro/config.json", Op: "create", Err: fs.ErrPermission}
	assert.Equal(t, "config write error: create /ro/config.json: permission denied", err.Error())
	assert.ErrorIs(t, err, ErrConfigWrite)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.NotErrorIs(t, err, ErrConfigParse)
}
