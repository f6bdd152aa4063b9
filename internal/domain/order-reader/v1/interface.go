package orderreaderv1

import (
	"context"

	orderbookv1 "github.com/muhammadchandra19/limit-orderbook/internal/domain/orderbook/v1"
)

// OrderReader defines the interface for reading order submissions from a source.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=orderreaderv1_mock
type OrderReader interface {
	// ReadOrder blocks until the next order is available. It returns io.EOF once the
	// source is exhausted and an error carrying the order_parse_error code for input
	// that could not be turned into a request.
	ReadOrder(ctx context.Context) (orderbookv1.SubmitOrderRequest, error)
	// Close releases the underlying source.
	Close() error
}
