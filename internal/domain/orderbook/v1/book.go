package orderbookv1

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// OrderBook pairs a bid ladder with an ask ladder. It is a value: executing an
// order returns a new OrderBook and leaves the receiver as it was, so older
// books stay valid for any reader still holding them.
type OrderBook struct {
	bids Ladder
	asks Ladder
}

// NewOrderBook builds a book from seed levels given in priority order. The seed
// must be uncrossed.
func NewOrderBook(bids, asks []PriceLevel) (OrderBook, error) {
	bidLadder, err := NewLadder(SideBid, bids...)
	if err != nil {
		return OrderBook{}, fmt.Errorf("bids: %w", err)
	}
	askLadder, err := NewLadder(SideAsk, asks...)
	if err != nil {
		return OrderBook{}, fmt.Errorf("asks: %w", err)
	}
	return NewOrderBookFromLadders(bidLadder, askLadder)
}

// NewOrderBookFromLadders pairs two already validated ladders.
func NewOrderBookFromLadders(bids, asks Ladder) (OrderBook, error) {
	if bids.Side() != SideBid || asks.Side() != SideAsk {
		return OrderBook{}, fmt.Errorf("%w: got bids=%q asks=%q", ErrUnknownSide, bids.Side(), asks.Side())
	}
	if !bids.IsEmpty() && !asks.IsEmpty() && bids.levels[0].Price.GreaterThanOrEqual(asks.levels[0].Price) {
		return OrderBook{}, fmt.Errorf("%w: bid %s, ask %s", ErrCrossedBook, bids.levels[0].Price, asks.levels[0].Price)
	}
	return OrderBook{bids: bids, asks: asks}, nil
}

// Bids returns the bid ladder.
func (b OrderBook) Bids() Ladder {
	if b.bids.side == "" {
		return Ladder{side: SideBid}
	}
	return b.bids
}

// Asks returns the ask ladder.
func (b OrderBook) Asks() Ladder {
	if b.asks.side == "" {
		return Ladder{side: SideAsk}
	}
	return b.asks
}

// Ladder returns the ladder of the given side.
func (b OrderBook) Ladder(side Side) Ladder {
	if side == SideBid {
		return b.Bids()
	}
	return b.Asks()
}

func (b OrderBook) with(ladder Ladder) OrderBook {
	if ladder.side == SideBid {
		b.bids = ladder
	} else {
		b.asks = ladder
	}
	return b
}

// ExecuteLimit matches a limit order against the levels of the opposite side
// that cross limit, then rests any unfilled quantity at limit on the order's
// own side.
func (b OrderBook) ExecuteLimit(side Side, limit decimal.Decimal, quantity int64) (TradeResult, OrderBook, error) {
	if !side.Valid() {
		return TradeResult{}, b, fmt.Errorf("%w: %q", ErrUnknownSide, side)
	}
	if !limit.IsPositive() {
		return TradeResult{}, b, fmt.Errorf("%w: got %s", ErrInvalidPrice, limit)
	}
	if quantity <= 0 {
		return TradeResult{}, b, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	eligible, ineligible := b.Ladder(side.Opposite()).SplitEligible(limit)
	trade, rest := Consume(eligible, quantity)
	next := b.with(rest.Concat(ineligible))

	if unfilled := quantity - trade.ExecutedQuantity; unfilled > 0 {
		next = next.with(InsertResting(b.Ladder(side), limit, unfilled))
	}

	return trade, next, nil
}

// ExecuteMarket consumes the opposite side at any price. Quantity beyond the
// available liquidity is dropped; market orders never rest.
func (b OrderBook) ExecuteMarket(side Side, quantity int64) (TradeResult, OrderBook, error) {
	if !side.Valid() {
		return TradeResult{}, b, fmt.Errorf("%w: %q", ErrUnknownSide, side)
	}
	if quantity <= 0 {
		return TradeResult{}, b, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	trade, rest := Consume(b.Ladder(side.Opposite()), quantity)
	return trade, b.with(rest), nil
}

// Submit validates req and dispatches it to ExecuteLimit or ExecuteMarket. On
// error the returned book is the receiver.
func (b OrderBook) Submit(req SubmitOrderRequest) (TradeResult, OrderBook, error) {
	if err := req.Validate(); err != nil {
		return TradeResult{}, b, err
	}
	if req.Type == OrderTypeLimit {
		return b.ExecuteLimit(req.Side, req.Price.Decimal, req.Quantity)
	}
	return b.ExecuteMarket(req.Side, req.Quantity)
}
