package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		log, err := New(&Config{Level: "info", Format: "json", Output: "stdout"})
		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("console format", func(t *testing.T) {
		log, err := New(&Config{Level: "debug", Format: "console", Output: "stderr"})
		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("empty config falls back to defaults", func(t *testing.T) {
		log, err := New(&Config{})
		require.NoError(t, err)
		assert.NotNil(t, log)
		assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	})
}

func TestNewServiceField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")

	log, err := New(&Config{Level: "info", Format: "json", Output: path, Service: "safe-backend"})
	require.NoError(t, err)

	log.Info("service started")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "safe-backend", entry["service"])
	assert.Equal(t, "service started", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.NotEmpty(t, entry["time"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"fatal", zapcore.FatalLevel},
		{"", zapcore.InfoLevel},
		{"nonsense", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestNewSink(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		assert.NotNil(t, newSink("stdout"))
	})

	t.Run("stderr", func(t *testing.T) {
		assert.NotNil(t, newSink("stderr"))
	})

	t.Run("file path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.log")
		sink := newSink(path)
		require.NotNil(t, sink)

		_, err := sink.Write([]byte("line\n"))
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "line\n", string(data))
	})

	t.Run("unwritable path falls back to stdout", func(t *testing.T) {
		assert.NotNil(t, newSink("/nonexistent-dir/out.log"))
	})
}

func TestSync(t *testing.T) {
	log, err := New(&Config{Level: "info", Format: "json", Output: filepath.Join(t.TempDir(), "s.log")})
	require.NoError(t, err)
	log.Info("flushed")
	assert.NoError(t, Sync(log))
}

func TestLogLevelFiltering(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "warn.log")

	log, err := New(&Config{Level: "warn", Format: "json", Output: path})
	require.NoError(t, err)

	log.Debug("dropped")
	log.Info("dropped")
	log.Warn("kept")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), "kept")
}
