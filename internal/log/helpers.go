package log

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// ParseLevel maps a LogLevel to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch LogLevel(level) {
	case LogDebug:
		return zap.DebugLevel, nil
	case LogInfo:
		return zap.InfoLevel, nil
	case LogWarn:
		return zap.WarnLevel, nil
	case LogError:
		return zap.ErrorLevel, nil
	default:
		return zap.InfoLevel, fmt.Errorf("unknown log level: %q", level)
	}
}

// NewConsoleLogger builds the logger used by the CLI: console encoding on stderr.
func NewConsoleLogger(level zapcore.Level) *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(consoleCore)
}

// WithTestLogHandler registers a handler that records entries in memory.
func WithTestLogHandler(
	ctx context.Context,
) (context.Context, func() context.Context, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	ctx, end := WithZapLogHandler(ctx, 1, zap.New(core))
	return ctx, end, logs
}
