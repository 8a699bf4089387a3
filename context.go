package drawfind

import "context"

type contextKey int

const requestIDContextKey = contextKey(iota + 1)

// NewContextWithRequestID returns a new context carrying the ID of the
// search request being served.
func NewContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, id)
}

// RequestIDFromContext returns the request ID stored in ctx, or "" if none.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}
