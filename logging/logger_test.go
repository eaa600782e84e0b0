package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selector.log")

	logger, err := New(path, "info")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("fetched countries")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"fetched countries"`)
	assert.Contains(t, string(data), `"level":"INFO"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNewEmptyPathIsNop(t *testing.T) {
	logger, err := New("", "not-a-level")
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "x.log"), "loud")
	assert.Error(t, err)
}
