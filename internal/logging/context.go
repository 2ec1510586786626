package logging

import (
	"context"
	"strings"
)

type ctxKey string

const requestIDKey ctxKey = "request_id"

// ContextWithRequestID stores the provided request ID in the context.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the request ID from context if present.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}

	return ""
}

// Redact masks personal contact details before they reach a log line. The
// first rune and, for email addresses, the domain stay readable.
func Redact(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	if at := strings.LastIndex(value, "@"); at > 0 {
		return string([]rune(value)[0]) + "***" + value[at:]
	}

	runes := []rune(value)
	if len(runes) <= 4 {
		return "***"
	}

	return "***" + string(runes[len(runes)-2:])
}
