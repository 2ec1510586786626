package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()

	var lines []map[string]interface{}
	for _, raw := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(raw) == 0 {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &m))
		lines = append(lines, m)
	}

	return lines
}

func TestLogLevelString(t *testing.T) {
	testCases := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LevelFatal, "FATAL"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.level.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, LevelDebug, lvl)

	lvl, err = ParseLevel("WARNING")
	require.NoError(t, err)
	assert.Equal(t, LevelWarn, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, LevelInfo, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestLoggerJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelInfo, Format: "json", Output: &buf, Service: "test"})

	ctx := ContextWithRequestID(context.Background(), "req-1")
	logger.WithComponent("server").Info(ctx, "page rendered", "path", "/about", "status", 200)
	logger.Debug(ctx, "suppressed")
	logger.Error(ctx, errors.New("boom"), "sink failed")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "page rendered", lines[0]["message"])
	assert.Equal(t, "server", lines[0]["component"])
	assert.Equal(t, "/about", lines[0]["path"])
	assert.Equal(t, "req-1", lines[0]["request_id"])
	assert.Equal(t, "test", lines[0]["service"])

	assert.Equal(t, "error", lines[1]["level"])
	assert.Equal(t, "boom", lines[1]["error"])
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelDebug, Output: &buf})

	logger.With("session", "abc", 42, "dropped", "dangling").Debug(context.Background(), "step")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "abc", lines[0]["session"])
	assert.NotContains(t, lines[0], "dangling")
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Info(context.Background(), "nothing")
	})
}

func TestRequestIDFromContext(t *testing.T) {
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
	//nolint:staticcheck // nil context is accepted on purpose
	assert.Equal(t, "x", RequestIDFromContext(ContextWithRequestID(nil, "x")))
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "", Redact("  "))
	assert.Equal(t, "j***@x.com", Redact("jane@x.com"))
	assert.Equal(t, "***90", Redact("(123) 456-7890"))
	assert.Equal(t, "***", Redact("123"))
}
