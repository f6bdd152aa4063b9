package orderbookv1

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Ladder is one side of the book: price levels sorted by matching priority,
// descending for bids and ascending for asks. Prices are unique and every
// quantity is positive. A Ladder is never modified after construction; every
// operation that changes it returns a new Ladder.
type Ladder struct {
	side   Side
	levels []PriceLevel
}

// NewLadder validates levels against the ordering of side and returns a Ladder
// holding its own copy of them.
func NewLadder(side Side, levels ...PriceLevel) (Ladder, error) {
	if !side.Valid() {
		return Ladder{}, fmt.Errorf("%w: %q", ErrUnknownSide, side)
	}

	l := Ladder{side: side, levels: make([]PriceLevel, len(levels))}
	copy(l.levels, levels)

	for i, lvl := range l.levels {
		if !lvl.Price.IsPositive() {
			return Ladder{}, fmt.Errorf("%w: level %d has price %s", ErrInvalidPrice, i, lvl.Price)
		}
		if lvl.Quantity <= 0 {
			return Ladder{}, fmt.Errorf("%w: level %d has quantity %d", ErrInvalidQuantity, i, lvl.Quantity)
		}
		if i > 0 && !l.ahead(l.levels[i-1].Price, lvl.Price) {
			return Ladder{}, fmt.Errorf("%w: %s side level %d (%s) after %s",
				ErrInvalidLadder, side, i, lvl.Price, l.levels[i-1].Price)
		}
	}

	return l, nil
}

// Side returns the side of the book this ladder belongs to.
func (l Ladder) Side() Side {
	return l.side
}

// Len returns the number of price levels.
func (l Ladder) Len() int {
	return len(l.levels)
}

// IsEmpty reports whether the ladder has no levels.
func (l Ladder) IsEmpty() bool {
	return len(l.levels) == 0
}

// Levels returns a copy of the levels in priority order.
func (l Ladder) Levels() []PriceLevel {
	out := make([]PriceLevel, len(l.levels))
	copy(out, l.levels)
	return out
}

// Level returns the i-th level in priority order.
func (l Ladder) Level(i int) PriceLevel {
	return l.levels[i]
}

// Best returns the front level.
func (l Ladder) Best() (PriceLevel, error) {
	if l.IsEmpty() {
		return PriceLevel{}, fmt.Errorf("%w: %s side", ErrEmptyLadder, l.side)
	}
	return l.levels[0], nil
}

// Worst returns the last level.
func (l Ladder) Worst() (PriceLevel, error) {
	if l.IsEmpty() {
		return PriceLevel{}, fmt.Errorf("%w: %s side", ErrEmptyLadder, l.side)
	}
	return l.levels[len(l.levels)-1], nil
}

// TotalQuantity returns the sum of all level quantities.
func (l Ladder) TotalQuantity() int64 {
	var total int64
	for _, lvl := range l.levels {
		total += lvl.Quantity
	}
	return total
}

// VWAP returns the volume-weighted average price over exactly the first k levels.
func (l Ladder) VWAP(k int) (decimal.Decimal, error) {
	if k < 1 {
		return decimal.Zero, fmt.Errorf("%w: depth must be at least 1, got %d", ErrInsufficientDepth, k)
	}
	if len(l.levels) < k {
		return decimal.Zero, fmt.Errorf("%w: %s side has %d levels, need %d",
			ErrInsufficientDepth, l.side, len(l.levels), k)
	}

	notional := decimal.Zero
	var quantity int64
	for _, lvl := range l.levels[:k] {
		notional = notional.Add(lvl.Notional())
		quantity += lvl.Quantity
	}
	return notional.Div(decimal.NewFromInt(quantity)), nil
}

// ahead reports whether price a has strictly higher matching priority than b.
func (l Ladder) ahead(a, b decimal.Decimal) bool {
	if l.side == SideBid {
		return a.GreaterThan(b)
	}
	return a.LessThan(b)
}

// crosses reports whether a resting level at price can trade with an incoming
// limit order priced at limit.
func (l Ladder) crosses(price, limit decimal.Decimal) bool {
	if l.side == SideBid {
		return price.GreaterThanOrEqual(limit)
	}
	return price.LessThanOrEqual(limit)
}

// SplitEligible partitions the ladder at the first level that does not cross
// limit. Eligibility is monotone in priority order, so the eligible levels are
// always a prefix.
func (l Ladder) SplitEligible(limit decimal.Decimal) (eligible, ineligible Ladder) {
	idx := len(l.levels)
	for i, lvl := range l.levels {
		if !l.crosses(lvl.Price, limit) {
			idx = i
			break
		}
	}
	return Ladder{side: l.side, levels: l.levels[:idx:idx]},
		Ladder{side: l.side, levels: l.levels[idx:]}
}

// Concat returns the levels of l followed by the levels of tail. The caller
// guarantees that every price in l is ahead of every price in tail.
func (l Ladder) Concat(tail Ladder) Ladder {
	if tail.IsEmpty() {
		return l
	}
	if l.IsEmpty() {
		return Ladder{side: l.side, levels: tail.levels}
	}
	levels := make([]PriceLevel, 0, len(l.levels)+len(tail.levels))
	levels = append(levels, l.levels...)
	levels = append(levels, tail.levels...)
	return Ladder{side: l.side, levels: levels}
}
