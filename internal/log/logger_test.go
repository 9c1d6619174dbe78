// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestConfigure_AttachesServiceAndVersion(t *testing.T) {
	defer Configure(Config{})

	var buf bytes.Buffer
	Configure(Config{Level: "info", Output: &buf, Service: "svc", Version: "v1.2.3"})

	l := Base()
	l.Info().Msg("hello")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "svc", entry[FieldService])
	assert.Equal(t, "v1.2.3", entry[FieldVersion])
	assert.Equal(t, "hello", entry["message"])
}

func TestConfigure_LevelFromEnv(t *testing.T) {
	defer Configure(Config{})
	t.Setenv("LOG_LEVEL", "debug")

	var buf bytes.Buffer
	Configure(Config{Output: &buf})

	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestConfigure_InvalidLevelKeepsDefault(t *testing.T) {
	defer Configure(Config{})
	t.Setenv("LOG_LEVEL", "")

	Configure(Config{Level: "chatty", Output: &bytes.Buffer{}})

	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestWithComponent(t *testing.T) {
	defer Configure(Config{})

	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf})

	l := WithComponent("settings")
	l.Debug().Str(FieldEvent, "settings.loaded").Msg("loaded")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "settings", entry[FieldComponent])
	assert.Equal(t, "settings.loaded", entry[FieldEvent])
}

func TestDerive(t *testing.T) {
	defer Configure(Config{})

	var buf bytes.Buffer
	Configure(Config{Level: "info", Output: &buf})

	l := Derive(func(c *zerolog.Context) {
		*c = c.Str(FieldPath, "/opt/app/config.json")
	})
	l.Info().Msg("x")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "/opt/app/config.json", entry[FieldPath])
}
