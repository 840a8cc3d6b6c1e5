package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLogQuery(t *testing.T) {
	buf := captureLog(t)

	LogQuery("CREATE INDEX IF NOT EXISTS idx_recipes_title ON recipes(title);", 3*time.Millisecond, nil)
	out := buf.String()
	require.Contains(t, out, "Query executed")
	require.Contains(t, out, "type=db")
	require.Contains(t, out, "idx_recipes_title")

	buf.Reset()
	LogQuery("SELECT 1", time.Millisecond, errors.New("connection reset"))
	out = buf.String()
	require.Contains(t, out, "Query failed")
	require.Contains(t, out, "connection reset")
}

func TestLogSystem(t *testing.T) {
	buf := captureLog(t)

	LogSystem("Starting backend server", slog.String("address", "0.0.0.0:8000"))
	out := buf.String()
	require.Contains(t, out, "type=sys")
	require.Contains(t, out, "Starting backend server")
	require.Contains(t, out, "0.0.0.0:8000")
}

func TestLogError(t *testing.T) {
	buf := captureLog(t)

	LogError("Failed to connect to database", errors.New("dial timeout"))
	out := buf.String()
	require.Contains(t, out, "type=error")
	require.Contains(t, out, "dial timeout")
}
