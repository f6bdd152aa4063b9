package executionpublisherv1

import (
	"time"

	orderbookv1 "github.com/muhammadchandra19/limit-orderbook/internal/domain/orderbook/v1"
)

// Execution is the report emitted after an order has been applied to the book, or rejected.
type Execution struct {
	Sequence  int64
	Timestamp time.Time
	Request   orderbookv1.SubmitOrderRequest
	Trade     orderbookv1.TradeResult
	// Book is the book after the order. On rejection it is the unchanged book.
	Book orderbookv1.OrderBook
	Err  error
}

// NewExecution creates an execution report stamped with the current time.
func NewExecution(seq int64, req orderbookv1.SubmitOrderRequest, trade orderbookv1.TradeResult, book orderbookv1.OrderBook, err error) Execution {
	return Execution{
		Sequence:  seq,
		Timestamp: time.Now().UTC(),
		Request:   req,
		Trade:     trade,
		Book:      book,
		Err:       err,
	}
}

// Rejected reports whether the order was refused.
func (e Execution) Rejected() bool {
	return e.Err != nil
}

// Filled reports whether the full requested quantity traded.
func (e Execution) Filled() bool {
	return !e.Rejected() && e.Trade.ExecutedQuantity == e.Request.Quantity
}

// Rested returns the quantity a limit order left resting on its own side.
func (e Execution) Rested() int64 {
	if e.Rejected() || e.Request.Type != orderbookv1.OrderTypeLimit {
		return 0
	}
	return e.Request.Quantity - e.Trade.ExecutedQuantity
}
