package logger

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/LavaJover/cognit-service/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestInit_WritesRotatingFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	log, err := Init(config.LogConfig{LogLevel: "info", LogDirectory: dir, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1})
	require.NoError(t, err)

	log.Info("hello", zap.String("participant_id", "P-1"))
	_ = log.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "cognit.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"participant_id":"P-1"`)
}

func TestGormZapLogger_Trace(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	gl := NewGormZapLogger(zap.New(core), gormlogger.Warn)
	ctx := context.Background()
	fc := func() (string, int64) { return "SELECT 1", 1 }

	gl.Trace(ctx, time.Now(), fc, gorm.ErrRecordNotFound)
	gl.Trace(ctx, time.Now(), fc, gorm.ErrDuplicatedKey)
	assert.Zero(t, logs.Len(), "expected outcomes are not logged")

	gl.Trace(ctx, time.Now(), fc, errors.New("connection refused"))
	gl.Trace(ctx, time.Now().Add(-time.Second), fc, nil)
	gl.Trace(ctx, time.Now(), fc, nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "db query failed", entries[0].Message)
	assert.Equal(t, "connection refused", entries[0].ContextMap()["error"])

	slow := entries[1]
	assert.Equal(t, "db query slow", slow.Message)
	fields := slow.ContextMap()
	assert.Equal(t, "db", fields["component"])
	assert.Equal(t, "select", fields["operation"])
	assert.Equal(t, "SELECT 1", fields["query"])
	assert.EqualValues(t, 1, fields["rows_affected"])
	assert.GreaterOrEqual(t, fields["duration_ms"], 1000.0)

	silent := gl.LogMode(gormlogger.Silent)
	silent.Trace(ctx, time.Now(), fc, errors.New("boom"))
	assert.Equal(t, 2, logs.Len())
}
