package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_RenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, slog.LevelInfo)

	logger.Warn("selection rejected", "error", errors.New("invalid option"))

	assert.Contains(t, buf.String(), `err="invalid option"`)
	assert.NotContains(t, buf.String(), "error=")
}

func TestNewWithWriter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, slog.LevelWarn)

	logger.Info("hidden")
	assert.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	level, ok, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, slog.LevelDebug, level)

	_, ok, err = ParseLevel("off")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = ParseLevel("verbose")
	assert.Error(t, err)
}

func TestFromLevelName(t *testing.T) {
	var buf bytes.Buffer

	logger, err := FromLevelName(&buf, "off")
	require.NoError(t, err)
	logger.Error("dropped")
	assert.Empty(t, buf.String())

	logger, err = FromLevelName(&buf, "info")
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("template registered", "name", "memo")
	assert.Contains(t, buf.String(), "name=memo")
	assert.NotContains(t, buf.String(), "hidden")

	_, err = FromLevelName(&buf, "loud")
	assert.Error(t, err)
}
