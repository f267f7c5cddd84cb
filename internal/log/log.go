package log

import (
	"context"
	"errors"
	stdlog "log"
	"sync"

	"github.com/google/uuid"
	"github.com/on-the-ground/tarai/shared/helper"
	"go.uber.org/zap"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"

	// LogDebug is used for debugging messages with detailed internal information.
	LogDebug LogLevel = "debug"
)

// ErrNoLogHandler is returned when the context carries no log handler.
var ErrNoLogHandler = errors.New("no log handler in context")

// LogPayload is the payload of one log call.
// It contains the log level, message string, and optional structured fields.
type LogPayload struct {
	Level   LogLevel
	Message string
	Fields  map[string]interface{}
}

type handlerKey struct{}

// zapHandler drains payloads on a single goroutine so callers never block on
// the logger itself.
type zapHandler struct {
	HandlerId string
	logCh     chan LogPayload
	done      chan struct{}
	closeOnce sync.Once
	logger    *zap.Logger
}

// WithZapLogHandler registers a fire-and-forget log handler backed by logger.
// The returned teardown drains pending payloads, syncs the logger and returns
// the parent context, which should be used for further operations.
func WithZapLogHandler(
	ctx context.Context,
	bufferSize int,
	logger *zap.Logger,
) (context.Context, func() context.Context) {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	h := &zapHandler{
		HandlerId: uuid.New().String(),
		logCh:     make(chan LogPayload, bufferSize),
		done:      make(chan struct{}),
		logger:    logger,
	}

	ready := make(chan struct{})
	go func() {
		defer close(h.done)
		close(ready)
		for payload := range h.logCh {
			h.handle(payload)
		}
	}()
	<-ready

	return context.WithValue(ctx, handlerKey{}, h), func() context.Context {
		h.close()
		return ctx
	}
}

func (h *zapHandler) handle(payload LogPayload) {
	fields := make([]zap.Field, 0, len(payload.Fields))
	for k, v := range payload.Fields {
		fields = append(fields, zap.Any(k, v))
	}

	switch payload.Level {
	case LogInfo:
		h.logger.Info(payload.Message, fields...)
	case LogWarn:
		h.logger.Warn(payload.Message, fields...)
	case LogError:
		h.logger.Error(payload.Message, fields...)
	case LogDebug:
		h.logger.Debug(payload.Message, fields...)
	default:
		h.logger.Info(payload.Message, fields...)
	}
}

func (h *zapHandler) close() {
	h.closeOnce.Do(func() {
		close(h.logCh)
		<-h.done
		// Sync on stdout/stderr returns EINVAL on some platforms; nothing to do about it.
		_ = h.logger.Sync()
	})
}

func (h *zapHandler) send(ctx context.Context, payload LogPayload) {
	defer func() {
		if r := recover(); r != nil {
			stdlog.Printf(
				"panic while sending to closed log handler: %+v",
				map[string]interface{}{
					"handlerId": h.HandlerId,
					"payload":   payload,
				},
			)
		}
	}()

	select {
	case <-ctx.Done():
	case h.logCh <- payload:
	}
}

// LogEff emits a structured log through the handler registered in ctx.
// Panics if no handler is registered.
func LogEff(ctx context.Context, level LogLevel, msg string, fields map[string]interface{}) {
	h := helper.MustGetTypedValue[*zapHandler](func() (any, error) {
		raw := ctx.Value(handlerKey{})
		if raw == nil {
			return nil, ErrNoLogHandler
		}
		return raw, nil
	})
	h.send(ctx, LogPayload{
		Level:   level,
		Message: msg,
		Fields:  fields,
	})
}
