package logger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSlowQuery = 200 * time.Millisecond

// GormZapLogger routes GORM's query log through zap under the "db" component.
type GormZapLogger struct {
	ZapLogger *zap.Logger
	LogLevel  gormlogger.LogLevel
	SlowQuery time.Duration
}

func NewGormZapLogger(zapLogger *zap.Logger, level gormlogger.LogLevel) *GormZapLogger {
	return &GormZapLogger{
		ZapLogger: zapLogger.With(zap.String("component", "db")),
		LogLevel:  level,
		SlowQuery: defaultSlowQuery,
	}
}

func (l *GormZapLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.LogLevel = level
	return &clone
}

func (l *GormZapLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	l.message(gormlogger.Info, msg, data)
}

func (l *GormZapLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	l.message(gormlogger.Warn, msg, data)
}

func (l *GormZapLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	l.message(gormlogger.Error, msg, data)
}

func (l *GormZapLogger) message(level gormlogger.LogLevel, msg string, data []interface{}) {
	if l.LogLevel < level {
		return
	}
	text := fmt.Sprintf(msg, data...)
	switch level {
	case gormlogger.Error:
		l.ZapLogger.Error(text)
	case gormlogger.Warn:
		l.ZapLogger.Warn(text)
	default:
		l.ZapLogger.Info(text)
	}
}

// Trace reports failed queries at error level and slow ones at warn. Missing
// rows and unique violations are answered by the repositories, so they stay
// quiet.
func (l *GormZapLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.LogLevel <= gormlogger.Silent {
		return
	}

	took := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, gorm.ErrDuplicatedKey)
	slow := l.SlowQuery > 0 && took > l.SlowQuery

	var msg string
	switch {
	case failed && l.LogLevel >= gormlogger.Error:
		msg = "db query failed"
	case slow && l.LogLevel >= gormlogger.Warn:
		msg = "db query slow"
	case l.LogLevel >= gormlogger.Info:
		msg = "db query"
	default:
		return
	}

	query, affected := fc()
	fields := []zap.Field{
		zap.String("operation", operation(query)),
		zap.Float64("duration_ms", float64(took.Microseconds())/1000),
		zap.Int64("rows_affected", affected),
		zap.String("query", query),
	}
	switch msg {
	case "db query failed":
		l.ZapLogger.Error(msg, append(fields, zap.Error(err))...)
	case "db query slow":
		l.ZapLogger.Warn(msg, append(fields, zap.Duration("threshold", l.SlowQuery))...)
	default:
		l.ZapLogger.Debug(msg, fields...)
	}
}

// operation returns the leading SQL verb in lower case, e.g. "select".
func operation(query string) string {
	verb, _, _ := strings.Cut(strings.TrimSpace(query), " ")
	return strings.ToLower(verb)
}
