// Package logger wraps zap with file rotation and a few convenience
// helpers used across the project.
package logger

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger global logger instance
var Logger *zap.Logger

// InitLogger sets up the logging system.
// Parameters:
// - filename: log file path
// - maxSize: maximum size per log file in MB
// - maxBackup: number of rotated files to keep
// - maxAge: days to keep rotated files
// - compress: whether to gzip rotated files
// - logType: "daily" for a file per day, "single" for one file
// - level: debug, info, warn, error or fatal
func InitLogger(filename string, maxSize, maxBackup, maxAge int, compress bool, logType string, level string) {
	writeSyncer := getLogWriter(filename, maxSize, maxBackup, maxAge, compress, logType)

	logLevel := new(zapcore.Level)
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		*logLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(getEncoder(), writeSyncer, logLevel)
	Logger = zap.New(core,
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zap.ErrorLevel),
	)
	zap.ReplaceGlobals(Logger)
}

func getEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = customTimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeDuration = zapcore.SecondsDurationEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	return zapcore.NewJSONEncoder(encoderConfig)
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
}

func getLogWriter(filename string, maxSize, maxBackup, maxAge int, compress bool, logType string) zapcore.WriteSyncer {
	if logType == "daily" {
		logname := time.Now().Format("2006-01-02.log")
		filename = strings.ReplaceAll(filename, "logs.log", logname)
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    maxSize,
		MaxBackups: maxBackup,
		MaxAge:     maxAge,
		Compress:   compress,
	}

	// Log to both terminal and file
	return zapcore.NewMultiWriteSyncer(
		zapcore.AddSync(os.Stdout),
		zapcore.AddSync(lumberJackLogger),
	)
}

// Dump pretty prints a value for quick debugging, second argument is an
// optional message.
func Dump(value interface{}, msg ...string) {
	valueString := jsonString(value)
	if len(msg) > 0 {
		getLogger().Warn("Dump", zap.String(msg[0], valueString))
	} else {
		getLogger().Warn("Dump", zap.String("data", valueString))
	}
}

// LogIf logs the error when err != nil
func LogIf(err error) {
	if err != nil {
		getLogger().Error("Error Occurred:", zap.Error(err))
	}
}

// LogWarnIf logs the error as a warning when err != nil
func LogWarnIf(err error) {
	if err != nil {
		getLogger().Warn("Error Occurred:", zap.Error(err))
	}
}

// Debug logs at debug level
func Debug(moduleName string, fields ...zap.Field) {
	getLogger().Debug(moduleName, fields...)
}

// Info logs at info level
func Info(moduleName string, fields ...zap.Field) {
	getLogger().Info(moduleName, fields...)
}

// Warn logs at warn level
func Warn(moduleName string, fields ...zap.Field) {
	getLogger().Warn(moduleName, fields...)
}

// Error logs at error level
func Error(moduleName string, fields ...zap.Field) {
	getLogger().Error(moduleName, fields...)
}

// DebugString logs a simple debug message, e.g.
// logger.DebugString("SSLCommerz", "init", "gateway URL missing")
func DebugString(moduleName, name, msg string) {
	getLogger().Debug(moduleName, zap.String(name, msg))
}

// InfoString logs a simple info message
func InfoString(moduleName, name, msg string) {
	getLogger().Info(moduleName, zap.String(name, msg))
}

// WarnString logs a simple warning message
func WarnString(moduleName, name, msg string) {
	getLogger().Warn(moduleName, zap.String(name, msg))
}

// ErrorString logs a simple error message
func ErrorString(moduleName, name, msg string) {
	getLogger().Error(moduleName, zap.String(name, msg))
}

// DebugJSON logs a value serialized as JSON at debug level
func DebugJSON(moduleName, name string, value interface{}) {
	getLogger().Debug(moduleName, zap.String(name, jsonString(value)))
}

// InfoJSON logs a value serialized as JSON at info level
func InfoJSON(moduleName, name string, value interface{}) {
	getLogger().Info(moduleName, zap.String(name, jsonString(value)))
}

func jsonString(value interface{}) string {
	b, err := json.Marshal(value)
	if err != nil {
		return "json marshal error"
	}
	return string(b)
}

// getLogger falls back to a no-op logger before InitLogger runs, which
// keeps unit tests free of setup boilerplate.
func getLogger() *zap.Logger {
	if Logger == nil {
		return zap.NewNop()
	}
	return Logger
}
