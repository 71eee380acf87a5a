// internal/utils/logging.go
package utils

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	DefaultLogFile = "idea-validator.log"
	LogFileMode    = 0644
)

// Structured field keys shared across components.
const (
	FieldSignal     = "signal"
	FieldHost       = "host"
	FieldPort       = "port"
	FieldPath       = "path"
	FieldRequestID  = "request_id"
	FieldModel      = "model"
	FieldStatusCode = "status_code"
	FieldErrorKind  = "error_kind"
	FieldIdeaLength = "idea_length"
	FieldDuration   = "duration"
)

var Logger *zap.Logger

// Init configures zap to write to the console and, unless LOG_FILE is "-", a JSON log file.
// Level comes from LOG_LEVEL (default: info). Call once at startup.
func Init() error {
	level := ParseLevel(os.Getenv("LOG_LEVEL"))

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(os.Stdout), level),
	}

	logPath := os.Getenv("LOG_FILE")
	if logPath == "" {
		logPath = DefaultLogFile
	}
	if logPath != "-" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, LogFileMode)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", logPath, err)
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(logFile), level))
	}

	Logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	Logger.Info("logging initialized",
		zap.String("log_level", level.String()),
		zap.String("log_file", logPath))

	return nil
}

// ParseLevel maps a LOG_LEVEL value to a zap level, falling back to info.
func ParseLevel(raw string) zapcore.Level {
	if raw == "" {
		return zapcore.InfoLevel
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		fmt.Printf("unknown LOG_LEVEL '%s', defaulting to 'info'\n", raw)
		return zapcore.InfoLevel
	}
	return level
}

// Sync flushes any buffered log entries.
func Sync() error {
	if Logger != nil {
		return Logger.Sync()
	}
	return nil
}

// WithComponent returns a logger pre-bound with a `component` field.
// Falls back to a no-op logger when Init has not run, so library code and tests never panic.
func WithComponent(component string) *zap.Logger {
	if Logger == nil {
		return zap.NewNop()
	}
	return Logger.With(zap.String("component", component))
}
