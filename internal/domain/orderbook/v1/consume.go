package orderbookv1

import "github.com/shopspring/decimal"

// Consume takes up to quantity from the front of ladder in priority order.
// It returns what executed and the ladder left behind: a partially consumed
// level keeps its price with the reduced quantity and stays at the front,
// followed by the untouched deeper levels. When the ladder runs out first the
// executed quantity is whatever was available and the remainder is empty.
// A non-positive quantity or an empty ladder executes nothing.
func Consume(ladder Ladder, quantity int64) (TradeResult, Ladder) {
	trade := TradeResult{Proceeds: decimal.Zero}
	if quantity <= 0 || ladder.IsEmpty() {
		return trade, ladder
	}

	remaining := quantity
	for i, lvl := range ladder.levels {
		take := min(remaining, lvl.Quantity)
		trade.Proceeds = trade.Proceeds.Add(lvl.Price.Mul(decimal.NewFromInt(take)))
		remaining -= take

		if remaining > 0 {
			continue
		}

		rest := make([]PriceLevel, 0, len(ladder.levels)-i)
		if left := lvl.Quantity - take; left > 0 {
			rest = append(rest, PriceLevel{Price: lvl.Price, Quantity: left})
		}
		rest = append(rest, ladder.levels[i+1:]...)

		trade.ExecutedQuantity = quantity
		return trade, Ladder{side: ladder.side, levels: rest}
	}

	trade.ExecutedQuantity = quantity - remaining
	return trade, Ladder{side: ladder.side}
}
