package utils

import (
	"context"
	"time"

	"homeo-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// LogOperation runs fn between a debug "started" line and an info "completed" or error
// "failed" line. Extra fields are attached to every line.
func LogOperation(logger *zap.Logger, operation, requestID string, fn func() error, fields ...zap.Field) error {
	base := append([]zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, operation),
	}, fields...)

	logger.Debug(operation+" started", base...)

	start := time.Now()
	err := fn()
	elapsed := zap.Duration(constvars.LoggingDurationKey, time.Since(start))

	if err != nil {
		logger.Error(operation+" failed", append(base, elapsed, zap.Bool(constvars.LoggingSuccessKey, false), zap.Error(err))...)
		return err
	}

	logger.Info(operation+" completed", append(base, elapsed, zap.Bool(constvars.LoggingSuccessKey, true))...)
	return nil
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)
}

// EnsureRequestID returns ctx carrying a request id, generating one when absent.
func EnsureRequestID(ctx context.Context) (context.Context, string) {
	if requestID := GetRequestID(ctx); requestID != "" {
		return ctx, requestID
	}
	requestID := GenerateRequestID()
	return WithRequestID(ctx, requestID), requestID
}
