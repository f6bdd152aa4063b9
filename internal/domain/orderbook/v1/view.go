package orderbookv1

import "github.com/shopspring/decimal"

// BookRow is one level of the flattened display view.
type BookRow struct {
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
	Side     Side            `json:"side"`
}

// Rows flattens the book into bids (best first) followed by asks (best first).
// Each row is labelled bid when its price is below the mid and ask otherwise;
// without a mid the label is the ladder the level came from.
func (b OrderBook) Rows() []BookRow {
	mid, midErr := b.MidPrice()
	rows := make([]BookRow, 0, b.Bids().Len()+b.Asks().Len())

	for _, ladder := range []Ladder{b.Bids(), b.Asks()} {
		for _, lvl := range ladder.levels {
			side := ladder.side
			if midErr == nil {
				side = SideAsk
				if lvl.Price.LessThan(mid) {
					side = SideBid
				}
			}
			rows = append(rows, BookRow{Price: lvl.Price, Quantity: lvl.Quantity, Side: side})
		}
	}

	return rows
}

// Summary holds the headline statistics of a book. Fields that cannot be
// computed for the current book are left invalid.
type Summary struct {
	BestBid     decimal.NullDecimal `json:"bestBid"`
	BestAsk     decimal.NullDecimal `json:"bestAsk"`
	Mid         decimal.NullDecimal `json:"mid"`
	Spread      decimal.NullDecimal `json:"spread"`
	MarketDepth decimal.NullDecimal `json:"marketDepth"`
	MicroPrice  decimal.NullDecimal `json:"microPrice"`
	Depth       int                 `json:"depth"` // k used for MicroPrice
}

// Summary computes the headline statistics, using k levels for the micro-price.
func (b OrderBook) Summary(k int) Summary {
	return Summary{
		BestBid:     nullable(b.BestBid()),
		BestAsk:     nullable(b.BestAsk()),
		Mid:         nullable(b.MidPrice()),
		Spread:      nullable(b.Spread()),
		MarketDepth: nullable(b.MarketDepth()),
		MicroPrice:  nullable(b.KLevelMicroPrice(k)),
		Depth:       k,
	}
}

func nullable(d decimal.Decimal, err error) decimal.NullDecimal {
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}
