// SPDX-License-Identifier: MIT

package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "v1.0.0"
	assert.Equal(t, "v1.0.0 (commit: none, built: unknown)", String())
}
