package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/tourguide/internal/ports"
)

func newTextLogger(buf *bytes.Buffer, opts ...ConsoleLoggerOption) *ConsoleLogger {
	base := []ConsoleLoggerOption{
		WithOutput(buf),
		WithLevel(ports.LevelDebug),
		WithTimestamp(false),
	}
	return NewConsoleLogger(append(base, opts...)...)
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	ctx := context.Background()

	logger.Debug(ctx, "debug")
	logger.Info(ctx, "info")
	logger.Warn(ctx, "warn")
	logger.Error(ctx, "error")

	assert.Same(t, logger, logger.With(ports.F("key", "value")))
	assert.Equal(t, ports.LevelInfo, logger.Level())

	logger.SetLevel(ports.LevelDebug)
	assert.Equal(t, ports.LevelDebug, logger.Level())
}

func TestConsoleLogger_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := newTextLogger(&buf)

	logger.Info(context.Background(), "tour activated",
		ports.F("tour", "intro"), ports.F("step", 2))

	assert.Equal(t, "[INFO] tour activated tour=intro step=2\n", buf.String())
}

func TestConsoleLogger_TextQuoting(t *testing.T) {
	var buf bytes.Buffer
	logger := newTextLogger(&buf, WithLevelLabel(false))

	logger.Warn(context.Background(), "reload failed",
		ports.F("error", errors.New("bad yaml: line 3")), ports.F("locator", ""))

	assert.Equal(t, `reload failed error="bad yaml: line 3" locator=""`+"\n", buf.String())
}

func TestConsoleLogger_Name(t *testing.T) {
	var buf bytes.Buffer
	logger := newTextLogger(&buf, WithName("tourguide"), WithLevelLabel(false))

	logger.Debug(context.Background(), "hello")
	assert.Equal(t, "tourguide: hello\n", buf.String())
}

func TestConsoleLogger_Timestamp(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(WithOutput(&buf), WithLevelLabel(false))
	logger.now = func() time.Time { return time.Date(2024, 5, 1, 9, 30, 15, 0, time.Local) }

	logger.Info(context.Background(), "tick")
	assert.Equal(t, "09:30:15 tick\n", buf.String())
}

func TestConsoleLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(WithOutput(&buf), WithJSONFormat(true), WithName("tourguide"))
	logger.now = func() time.Time { return time.Date(2024, 5, 1, 9, 30, 15, 0, time.UTC) }

	logger.Error(context.Background(), "save failed",
		ports.F("error", errors.New("disk full")), ports.F("step", 1))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "2024-05-01T09:30:15Z", entry["time"])
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "tourguide", entry["logger"])
	assert.Equal(t, "save failed", entry["msg"])
	assert.Equal(t, "disk full", entry["error"])
	assert.EqualValues(t, 1, entry["step"])
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newTextLogger(&buf, WithLevel(ports.LevelWarn))
	ctx := context.Background()

	logger.Debug(ctx, "debug")
	logger.Info(ctx, "info")
	logger.Warn(ctx, "warn")
	logger.Error(ctx, "error")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{"[WARN] warn", "[ERROR] error"}, lines)
}

func TestConsoleLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := newTextLogger(&buf, WithLevelLabel(false))

	child := logger.With(ports.F("tour", "intro"))
	child.Info(context.Background(), "started", ports.F("step", 0))
	logger.Info(context.Background(), "plain")

	assert.Equal(t, "started tour=intro step=0\nplain\n", buf.String())
}

func TestConsoleLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newTextLogger(&buf, WithLevel(ports.LevelInfo))

	logger.Debug(context.Background(), "hidden")
	logger.SetLevel(ports.LevelDebug)
	logger.Debug(context.Background(), "shown")

	assert.Equal(t, ports.LevelDebug, logger.Level())
	assert.Equal(t, "[DEBUG] shown\n", buf.String())
}

func TestLoggerContext(t *testing.T) {
	logger := NewNopLogger()
	ctx := ports.ContextWithLogger(context.Background(), logger)
	assert.Same(t, logger, ports.LoggerFromContext(ctx))
}
