package orderbookv1

import (
	"sort"

	"github.com/shopspring/decimal"
)

// InsertResting adds quantity at price to ladder. An existing level at exactly
// price absorbs the quantity; otherwise a new level is placed where it keeps
// the ladder strictly ordered, at the tail when it is the worst price so far.
// A non-positive quantity leaves the ladder as it is.
func InsertResting(ladder Ladder, price decimal.Decimal, quantity int64) Ladder {
	if quantity <= 0 {
		return ladder
	}

	levels := ladder.levels
	idx := sort.Search(len(levels), func(i int) bool {
		return !ladder.ahead(levels[i].Price, price)
	})

	out := make([]PriceLevel, 0, len(levels)+1)
	if idx < len(levels) && levels[idx].Price.Equal(price) {
		out = append(out, levels...)
		out[idx].Quantity += quantity
		return Ladder{side: ladder.side, levels: out}
	}

	out = append(out, levels[:idx]...)
	out = append(out, PriceLevel{Price: price, Quantity: quantity})
	out = append(out, levels[idx:]...)
	return Ladder{side: ladder.side, levels: out}
}
