// Package logger provides structured, context-carried logging on top of zap.
// A logger travels in the context so request- and cycle-scoped fields follow
// the work they describe.
package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment selects verbose, human-readable console output.
	DevelopmentEnvironment = "development"
	// ProductionEnvironment selects JSON output at info level.
	ProductionEnvironment = "production"
)

// defaultLogger is used when no logger is found in the context.
var defaultLogger *zap.Logger //nolint: gochecknoglobals

// Setup initializes the default logger for the given environment.
func Setup(environment string) {
	if environment == ProductionEnvironment {
		defaultLogger, _ = zap.NewProduction()

		return
	}

	defaultLogger, _ = zap.NewDevelopment()
}

// key is the context key under which the logger is stored.
type key struct{}

// Get retrieves the logger from the context, falling back to the default.
func Get(ctx context.Context) *zap.Logger {
	if logger, _ := ctx.Value(key{}).(*zap.Logger); logger != nil {
		return logger
	}
	if defaultLogger == nil {
		Setup(DevelopmentEnvironment)
	}

	return defaultLogger
}

// WithLogger returns a context carrying the provided logger.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// WithFields returns a context whose logger includes the given fields.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// Debug logs a message at debug level with the given fields.
func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

// Info logs a message at info level with the given fields.
func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

// Warn logs a message at warn level with the given fields.
func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

// Error logs a message at error level with the given fields.
func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}

// Fatal logs a message at fatal level with the given fields and exits.
func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Fatal(msg, fields...)
}
