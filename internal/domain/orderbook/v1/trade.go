package orderbookv1

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TradeResult aggregates what an order executed against the book.
type TradeResult struct {
	Proceeds         decimal.Decimal `json:"proceeds"`
	ExecutedQuantity int64           `json:"executedQuantity"`
}

// IsZero reports whether nothing was executed.
func (t TradeResult) IsZero() bool {
	return t.ExecutedQuantity == 0
}

// AveragePrice returns the volume-weighted execution price. ok is false when
// nothing executed.
func (t TradeResult) AveragePrice() (price decimal.Decimal, ok bool) {
	if t.ExecutedQuantity == 0 {
		return decimal.Zero, false
	}
	return t.Proceeds.Div(decimal.NewFromInt(t.ExecutedQuantity)), true
}

func (t TradeResult) String() string {
	return fmt.Sprintf("TradeResult{Proceeds=%s, ExecutedQuantity=%d}", t.Proceeds, t.ExecutedQuantity)
}
