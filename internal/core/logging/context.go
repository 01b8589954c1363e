package logging

import "context"

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	dishIDKey    contextKey = "dish_id"
)

// WithRequestID adds an HTTP request ID to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithDishID adds the id of the dish being worked on to the context.
func WithDishID(ctx context.Context, dishID int) context.Context {
	return context.WithValue(ctx, dishIDKey, dishID)
}

// GetRequestID retrieves the request ID from the context.
// Returns empty string if not present.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// GetDishID retrieves the dish ID from the context.
func GetDishID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(dishIDKey).(int)
	return id, ok
}
