package orderbookv1

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PriceLevel is the aggregated resting quantity at a single price.
type PriceLevel struct {
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

// NewPriceLevel creates a PriceLevel, rejecting non-positive prices and quantities.
func NewPriceLevel(price decimal.Decimal, quantity int64) (PriceLevel, error) {
	if !price.IsPositive() {
		return PriceLevel{}, fmt.Errorf("%w: got %s", ErrInvalidPrice, price)
	}
	if quantity <= 0 {
		return PriceLevel{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	return PriceLevel{Price: price, Quantity: quantity}, nil
}

// Notional returns price * quantity.
func (l PriceLevel) Notional() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(l.Quantity))
}

func (l PriceLevel) String() string {
	return fmt.Sprintf("PriceLevel{Price=%s, Quantity=%d}", l.Price, l.Quantity)
}
