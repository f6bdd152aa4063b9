package orderbook

import (
	"context"
	"sync"

	orderbookv1 "github.com/muhammadchandra19/limit-orderbook/internal/domain/orderbook/v1"
	"github.com/muhammadchandra19/limit-orderbook/pkg/logger"
	"github.com/muhammadchandra19/limit-orderbook/pkg/util"
	"github.com/shopspring/decimal"
)

// Stats holds counters accumulated over the lifetime of an Orderbook.
type Stats struct {
	Accepted         int64
	Rejected         int64
	ExecutedQuantity int64
	Proceeds         decimal.Decimal
}

// Orderbook holds the current book value and is the only place it is replaced.
// Readers get an immutable snapshot from Current and never block writers for long.
type Orderbook struct {
	mu     sync.RWMutex
	book   orderbookv1.OrderBook
	stats  Stats
	logger logger.Interface
}

// New creates an Orderbook starting from book.
func New(book orderbookv1.OrderBook, log logger.Interface) *Orderbook {
	return &Orderbook{
		book:   book,
		stats:  Stats{Proceeds: decimal.Zero},
		logger: log,
	}
}

// Current returns the book as of the last accepted order.
func (ob *Orderbook) Current() orderbookv1.OrderBook {
	ob.mu.RLock()
	defer ob.mu.RUnlock()
	return ob.book
}

// Stats returns a copy of the counters.
func (ob *Orderbook) Stats() Stats {
	ob.mu.RLock()
	defer ob.mu.RUnlock()
	return ob.stats
}

// SubmitOrder applies req to the current book. On error the current book is kept
// and returned alongside an *errors.ErrorDetails carrying the rejection code.
func (ob *Orderbook) SubmitOrder(ctx context.Context, req orderbookv1.SubmitOrderRequest) (orderbookv1.TradeResult, orderbookv1.OrderBook, error) {
	ctx = util.WithOrderID(ctx, req.ID)

	ob.mu.Lock()
	trade, next, err := ob.book.Submit(req)
	if err != nil {
		ob.stats.Rejected++
		ob.mu.Unlock()

		details := classify(err)
		ob.logger.WarnContext(ctx, "order rejected",
			logger.NewField("side", req.Side),
			logger.NewField("type", req.Type),
			logger.NewField("quantity", req.Quantity),
			logger.NewField("code", details.Code),
			logger.NewField("error", details.Error()),
		)
		return orderbookv1.TradeResult{}, next, details
	}

	ob.book = next
	ob.stats.Accepted++
	ob.stats.ExecutedQuantity += trade.ExecutedQuantity
	ob.stats.Proceeds = ob.stats.Proceeds.Add(trade.Proceeds)
	ob.mu.Unlock()

	ob.logger.InfoContext(ctx, "order executed",
		logger.NewField("side", req.Side),
		logger.NewField("type", req.Type),
		logger.NewField("quantity", req.Quantity),
		logger.NewField("executed", trade.ExecutedQuantity),
		logger.NewField("proceeds", trade.Proceeds.String()),
	)

	return trade, next, nil
}
