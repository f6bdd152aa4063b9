package util

import (
	"context"
)

type key string

const (
	requestIDKey = key("x-request-id")
	orderIDKey   = key("order-id")
)

// WithOrderID returns a context carrying the id of the order being processed.
func WithOrderID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, orderIDKey, id)
}

// GetOrderID returns the order id from context
// will return empty string if not present
func GetOrderID(ctx context.Context) string {
	id, _ := ctx.Value(orderIDKey).(string)
	return id
}

// GetRequestID returns request id from context
// will return empty string if not present
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
