package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLogger(t *testing.T) {
	t.Run("writes one JSON object per line", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(LogLevelInfo, &buf)

		logger.Info("request handled", String("method", "POST"), Int("status", 200))

		var entry LogEntry
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, LogLevelInfo, entry.Level)
		assert.Equal(t, "request handled", entry.Message)
		assert.Equal(t, "POST", entry.Fields["method"])
		assert.Equal(t, float64(200), entry.Fields["status"])
		assert.NotEmpty(t, entry.Timestamp)
	})

	t.Run("level filtering", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(LogLevelWarn, &buf)

		logger.Debug("dropped")
		logger.Info("dropped")
		logger.Warn("kept")
		logger.Error("kept")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Len(t, lines, 2)
	})

	t.Run("with adds base fields to every entry", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(LogLevelInfo, &buf).With(String("component", "detector"))

		logger.Info("first")

		var entry LogEntry
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "detector", entry.Fields["component"])
	})

	t.Run("error field", func(t *testing.T) {
		field := ErrorField("error", fmt.Errorf("boom"))
		assert.Equal(t, "boom", field.Value)

		field = ErrorField("error", nil)
		assert.Nil(t, field.Value)
	})
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, LogLevelDebug, ParseLogLevel("debug"))
	assert.Equal(t, LogLevelError, ParseLogLevel("error"))
	assert.Equal(t, LogLevelInfo, ParseLogLevel(""))
	assert.Equal(t, LogLevelInfo, ParseLogLevel("verbose"))
}
