// SPDX-License-Identifier: MIT

package logging_test

import (
	"testing"

	"github.com/katalvlaran/acidbase/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		l, err := logging.New(lvl)
		require.NoError(t, err, lvl)
		assert.NotNil(t, l.GetSink(), lvl)
	}

	_, err := logging.New("loud")
	require.Error(t, err)
}

func TestNewNop(t *testing.T) {
	l := logging.NewNop()
	assert.False(t, l.Enabled())
}
