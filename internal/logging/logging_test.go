package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesStructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info", false)
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Int("kills", 3).Msg("run over")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "run over", rec["message"])
	assert.Equal(t, float64(3), rec["kills"])
	assert.Contains(t, rec, "time")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", false)
	assert.Error(t, err)
}

func TestEmptyLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "", false)
	require.NoError(t, err)
	logger.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())
}
