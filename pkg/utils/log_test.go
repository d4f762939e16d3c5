package utils

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreDefaultLogger puts back the logger that was installed before the test.
func restoreDefaultLogger(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestInitLoggingWith_JSON(t *testing.T) {
	restoreDefaultLogger(t)
	var out bytes.Buffer
	initLoggingWith(&out, HandlerTypeJSON, LogLevelWarn)

	slog.Info("Dropped below the level.")
	slog.Warn("Kept.", "swaps", 3)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)
	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "Kept.", record["msg"])
	assert.EqualValues(t, 3, record["swaps"])
}

func TestInitLoggingWith_Text(t *testing.T) {
	restoreDefaultLogger(t)
	var out bytes.Buffer
	initLoggingWith(&out, HandlerTypeText, LogLevelDebug)

	slog.Debug("Sift step.", "phase", "build")
	assert.Contains(t, out.String(), "msg=\"Sift step.\"")
	assert.Contains(t, out.String(), "phase=build")
}

func TestInitLoggingWith_Unsupported(t *testing.T) {
	restoreDefaultLogger(t)
	invariantsMetric.Reset()
	var out bytes.Buffer
	initLoggingWith(&out, LogHandlerType("xml"), LogLevel("loud"))

	assert.Equal(t, 1, GetMetricValue("log", "unsupported_log_level"))
	assert.Equal(t, 1, GetMetricValue("log", "unsupported_handler_type"))
	// Falls back to an info level text handler.
	slog.Info("Still logging.")
	assert.Contains(t, out.String(), "Still logging.")
}
