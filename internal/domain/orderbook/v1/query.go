package orderbookv1

import "github.com/shopspring/decimal"

// BestBid returns the highest bid price.
func (b OrderBook) BestBid() (decimal.Decimal, error) {
	lvl, err := b.Bids().Best()
	return lvl.Price, err
}

// BestAsk returns the lowest ask price.
func (b OrderBook) BestAsk() (decimal.Decimal, error) {
	lvl, err := b.Asks().Best()
	return lvl.Price, err
}

// MidPrice returns (best bid + best ask) / 2.
func (b OrderBook) MidPrice() (decimal.Decimal, error) {
	bid, ask, err := b.top()
	if err != nil {
		return decimal.Zero, err
	}
	return bid.Add(ask).Div(two), nil
}

// Spread returns best ask - best bid.
func (b OrderBook) Spread() (decimal.Decimal, error) {
	bid, ask, err := b.top()
	if err != nil {
		return decimal.Zero, err
	}
	return ask.Sub(bid), nil
}

// MarketDepth returns the distance between the worst ask and the worst bid.
func (b OrderBook) MarketDepth() (decimal.Decimal, error) {
	bid, err := b.Bids().Worst()
	if err != nil {
		return decimal.Zero, err
	}
	ask, err := b.Asks().Worst()
	if err != nil {
		return decimal.Zero, err
	}
	return ask.Price.Sub(bid.Price), nil
}

// KLevelMicroPrice averages the bid-side and ask-side VWAPs taken over the
// first k levels of each ladder in priority order.
func (b OrderBook) KLevelMicroPrice(k int) (decimal.Decimal, error) {
	bid, err := b.Bids().VWAP(k)
	if err != nil {
		return decimal.Zero, err
	}
	ask, err := b.Asks().VWAP(k)
	if err != nil {
		return decimal.Zero, err
	}
	return bid.Add(ask).Div(two), nil
}

func (b OrderBook) top() (bid, ask decimal.Decimal, err error) {
	if bid, err = b.BestBid(); err != nil {
		return
	}
	ask, err = b.BestAsk()
	return
}
