package orderbookv1

import (
	"fmt"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Side identifies which side of the book an order originates from.
type Side string

const (
	// SideBid is a buy order; it trades against asks and rests on bids.
	SideBid Side = "bid"
	// SideAsk is a sell order; it trades against bids and rests on asks.
	SideAsk Side = "ask"
)

// Opposite returns the side an order of this side trades against.
func (s Side) Opposite() Side {
	if s == SideBid {
		return SideAsk
	}
	return SideBid
}

// Valid reports whether s is SideBid or SideAsk.
func (s Side) Valid() bool {
	return s == SideBid || s == SideAsk
}

// OrderType represents the type of order.
type OrderType string

const (
	// OrderTypeLimit represents a limit order.
	OrderTypeLimit OrderType = "limit"
	// OrderTypeMarket represents a market order.
	OrderTypeMarket OrderType = "market"
)

// SubmitOrderRequest is a single order submission against the book.
type SubmitOrderRequest struct {
	ID       string              `json:"id"`
	Side     Side                `json:"side"`
	Type     OrderType           `json:"type"`
	Price    decimal.NullDecimal `json:"price"` // required for limit orders, ignored for market orders
	Quantity int64               `json:"quantity"`
}

// NewLimitOrder builds a limit order request with a fresh ID.
func NewLimitOrder(side Side, price decimal.Decimal, quantity int64) SubmitOrderRequest {
	return SubmitOrderRequest{
		ID:       ulid.Make().String(),
		Side:     side,
		Type:     OrderTypeLimit,
		Price:    decimal.NewNullDecimal(price),
		Quantity: quantity,
	}
}

// NewMarketOrder builds a market order request with a fresh ID.
func NewMarketOrder(side Side, quantity int64) SubmitOrderRequest {
	return SubmitOrderRequest{
		ID:       ulid.Make().String(),
		Side:     side,
		Type:     OrderTypeMarket,
		Quantity: quantity,
	}
}

// Validate checks the request without touching any book.
func (r SubmitOrderRequest) Validate() error {
	if !r.Side.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSide, r.Side)
	}
	if r.Quantity <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, r.Quantity)
	}
	switch r.Type {
	case OrderTypeLimit:
		if !r.Price.Valid {
			return fmt.Errorf("%w: limit order requires a price", ErrInvalidPrice)
		}
		if !r.Price.Decimal.IsPositive() {
			return fmt.Errorf("%w: got %s", ErrInvalidPrice, r.Price.Decimal)
		}
	case OrderTypeMarket:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOrderType, r.Type)
	}
	return nil
}
