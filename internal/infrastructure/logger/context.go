package logger

import "context"

type contextKey string

const (
	requestIDKey contextKey = "request_id"
)

// WithRequestID stores a request ID on the context so lower layers
// (e.g. the GORM logger) can correlate their output.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID returns the request ID stored on the context, or ""
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
