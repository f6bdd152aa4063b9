package orderbookv1

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to build a decimal from a literal
func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Helper function to create a price level
func lvl(price string, qty int64) PriceLevel {
	return PriceLevel{Price: dec(price), Quantity: qty}
}

// Helper function to create a book that must be valid
func mustBook(t testing.TB, bids, asks []PriceLevel) OrderBook {
	t.Helper()
	book, err := NewOrderBook(bids, asks)
	require.NoError(t, err)
	return book
}

// Helper function to create a ladder that must be valid
func mustLadder(t testing.TB, side Side, levels ...PriceLevel) Ladder {
	t.Helper()
	ladder, err := NewLadder(side, levels...)
	require.NoError(t, err)
	return ladder
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "expected %s, got %s", want, got)
}

func assertLevels(t *testing.T, want []PriceLevel, got Ladder) {
	t.Helper()
	levels := got.Levels()
	require.Equal(t, len(want), len(levels), "levels: %v", levels)
	for i := range want {
		assert.Truef(t, want[i].Price.Equal(levels[i].Price), "level %d price: expected %s, got %s", i, want[i].Price, levels[i].Price)
		assert.Equalf(t, want[i].Quantity, levels[i].Quantity, "level %d quantity", i)
	}
}

// assertLadderInvariants checks ordering, uniqueness and positive quantities.
func assertLadderInvariants(t *testing.T, ladder Ladder) {
	t.Helper()
	levels := ladder.Levels()
	for i, l := range levels {
		assert.Greaterf(t, l.Quantity, int64(0), "%s level %d has non-positive quantity", ladder.Side(), i)
		if i == 0 {
			continue
		}
		if ladder.Side() == SideBid {
			assert.Truef(t, levels[i-1].Price.GreaterThan(l.Price), "bids not strictly descending at %d: %v", i, levels)
		} else {
			assert.Truef(t, levels[i-1].Price.LessThan(l.Price), "asks not strictly ascending at %d: %v", i, levels)
		}
	}
}

func assertUncrossed(t *testing.T, book OrderBook) {
	t.Helper()
	bid, bidErr := book.BestBid()
	ask, askErr := book.BestAsk()
	if bidErr != nil || askErr != nil {
		return
	}
	assert.Truef(t, bid.LessThan(ask), "crossed book: bid %s >= ask %s", bid, ask)
}
