package logger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger routes GORM log output through zap
type GormLogger struct {
	ZapLogger     *zap.Logger
	SlowThreshold time.Duration
}

// NewGormLogger builds the GORM logger adapter
func NewGormLogger() GormLogger {
	return GormLogger{
		ZapLogger:     getLogger(),
		SlowThreshold: 200 * time.Millisecond,
	}
}

// LogMode implements gormlogger.Interface
func (l GormLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return GormLogger{
		ZapLogger:     l.ZapLogger,
		SlowThreshold: l.SlowThreshold,
	}
}

// Info implements gormlogger.Interface
func (l GormLogger) Info(_ context.Context, str string, args ...interface{}) {
	l.logger().Sugar().Debugf(str, args...)
}

// Warn implements gormlogger.Interface
func (l GormLogger) Warn(_ context.Context, str string, args ...interface{}) {
	l.logger().Sugar().Warnf(str, args...)
}

// Error implements gormlogger.Interface
func (l GormLogger) Error(_ context.Context, str string, args ...interface{}) {
	l.logger().Sugar().Errorf(str, args...)
}

// Trace implements gormlogger.Interface
func (l GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	logFields := []zap.Field{
		zap.String("sql", sql),
		zap.String("time", fmt.Sprintf("%.3fms", float64(elapsed.Nanoseconds())/1e6)),
		zap.Int64("rows", rows),
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		l.logger().Error("Database Error", logFields...)
	case l.SlowThreshold != 0 && elapsed > l.SlowThreshold:
		l.logger().Warn("Database Slow Log", logFields...)
	default:
		l.logger().Debug("Database Query", logFields...)
	}
}

// logger skips wrapper frames so the caller shows the real call site
func (l GormLogger) logger() *zap.Logger {
	return l.ZapLogger.WithOptions(zap.AddCallerSkip(2))
}
