package log

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelTrace, ParseLevel("trace"))
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
}

func TestConsoleSplit(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger, closers, err := setup(slog.LevelDebug, "", &stdout, &stderr)
	require.NoError(t, err)
	assert.Empty(t, closers)

	logger.Debug("debug line")
	logger.Info("info line")
	logger.Error("error line")

	assert.Contains(t, stdout.String(), "debug line")
	assert.Contains(t, stdout.String(), "info line")
	assert.NotContains(t, stdout.String(), "error line")
	assert.Contains(t, stderr.String(), "error line")
	assert.NotContains(t, stderr.String(), "info line")
}

func TestLogFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "keytab.log")
	logger, closers, err := setup(slog.LevelInfo, path, &stdout, &stderr)
	require.NoError(t, err)
	require.Len(t, closers, 1)

	logger.With("k", "v").Info("to file")
	logger.Debug("filtered")
	require.NoError(t, closers[0].Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Contains(t, string(data), "k=v")
	assert.NotContains(t, string(data), "filtered")
	assert.Contains(t, stderr.String(), "to file")
	assert.Empty(t, stdout.String())
}
