package logger

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/muhammadchandra19/limit-orderbook/pkg/errors"
	"github.com/muhammadchandra19/limit-orderbook/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(level zapcore.Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return New(zap.New(core)), logs
}

func TestLogger_InfoContext(t *testing.T) {
	log, logs := observed(zapcore.InfoLevel)

	ctx := util.WithOrderID(util.WithRequestID(context.Background(), "req-1"), "order-1")
	log.InfoContext(ctx, "order accepted", NewField("side", "bid"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "order accepted", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "bid", fields["side"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "order-1", fields["order_id"])
}

func TestLogger_Error(t *testing.T) {
	log, logs := observed(zapcore.DebugLevel)

	log.Error(errors.NewTracer("submit_order_error").Wrap(stderrors.New("boom")), NewField("action", "submit"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "submit_order_error", entry.Message)
	assert.Equal(t, "submit", entry.ContextMap()["action"])
}

func TestLogger_WithFields(t *testing.T) {
	log, logs := observed(zapcore.DebugLevel)

	log.WithFields(NewField("component", "engine")).Debug("started")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "engine", logs.All()[0].ContextMap()["component"])
}

func TestLevel_getZapLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, Level("DEBUG").getZapLevel())
	assert.Equal(t, zapcore.WarnLevel, WarnLevel.getZapLevel())
	assert.Equal(t, zapcore.ErrorLevel, ErrorLevel.getZapLevel())
	assert.Equal(t, zapcore.InfoLevel, Level("verbose").getZapLevel())
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger(WithLoggingLevel(DebugLevel), WithOutputPaths([]string{"stderr"}))
	require.NoError(t, err)
	assert.True(t, log.GetZap().Core().Enabled(zapcore.DebugLevel))
}

func TestNewLogger_Keys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lob.log")
	log, err := NewLogger(WithOutputPaths([]string{path}), WithTimeKey("time"), WithLevelKey("severity"))
	require.NoError(t, err)

	log.Info("book seeded")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "book seeded", entry["message"])
	assert.Equal(t, "info", entry["severity"])
	assert.Contains(t, entry, "time")
}
