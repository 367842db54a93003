package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/dotmatrix/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel(" info "))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("bogus"))
}

func TestNew(t *testing.T) {
	b := new(bytes.Buffer)
	logger := New(config.LoggingConfig{Level: "info", Format: "json"}, b)

	logger.Debug("hidden")
	logger.Info("shown")
	require.NoError(t, logger.Sync())

	assert.NotContains(t, b.String(), "hidden")
	assert.Contains(t, b.String(), `"msg":"shown"`)
}

func TestNewFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "dotmatrix.log")
	logger := New(config.LoggingConfig{
		Level: "warn",
		File:  config.FileConfig{Filename: file, MaxSizeMB: 1},
	}, new(bytes.Buffer))

	logger.Warn("to file")
	require.NoError(t, logger.Sync())

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(b), "to file")
}
