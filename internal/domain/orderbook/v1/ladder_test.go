package orderbookv1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLadder(t *testing.T) {
	testCases := []struct {
		name        string
		side        Side
		levels      []PriceLevel
		expectedErr error
	}{
		{
			name:   "empty bid ladder",
			side:   SideBid,
			levels: nil,
		},
		{
			name:   "descending bids",
			side:   SideBid,
			levels: []PriceLevel{lvl("100", 10), lvl("99.5", 5), lvl("99", 1)},
		},
		{
			name:   "ascending asks",
			side:   SideAsk,
			levels: []PriceLevel{lvl("101", 10), lvl("101.25", 5)},
		},
		{
			name:        "ascending bids rejected",
			side:        SideBid,
			levels:      []PriceLevel{lvl("99", 10), lvl("100", 5)},
			expectedErr: ErrInvalidLadder,
		},
		{
			name:        "duplicate ask price rejected",
			side:        SideAsk,
			levels:      []PriceLevel{lvl("101", 10), lvl("101.0", 5)},
			expectedErr: ErrInvalidLadder,
		},
		{
			name:        "zero quantity rejected",
			side:        SideAsk,
			levels:      []PriceLevel{lvl("101", 0)},
			expectedErr: ErrInvalidQuantity,
		},
		{
			name:        "negative price rejected",
			side:        SideBid,
			levels:      []PriceLevel{lvl("-1", 3)},
			expectedErr: ErrInvalidPrice,
		},
		{
			name:        "unknown side rejected",
			side:        Side("middle"),
			expectedErr: ErrUnknownSide,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ladder, err := NewLadder(tc.side, tc.levels...)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.side, ladder.Side())
			assert.Equal(t, len(tc.levels), ladder.Len())
		})
	}
}

func TestLadder_DoesNotAliasInput(t *testing.T) {
	input := []PriceLevel{lvl("100", 10), lvl("99", 5)}
	ladder := mustLadder(t, SideBid, input...)

	input[0].Quantity = 999
	assert.Equal(t, int64(10), ladder.Level(0).Quantity)

	levels := ladder.Levels()
	levels[1].Quantity = 999
	assert.Equal(t, int64(5), ladder.Level(1).Quantity)
}

func TestLadder_BestWorst(t *testing.T) {
	t.Run("Populated ladder", func(t *testing.T) {
		ladder := mustLadder(t, SideAsk, lvl("101", 8), lvl("102", 4), lvl("105", 1))

		best, err := ladder.Best()
		require.NoError(t, err)
		assertDecimal(t, "101", best.Price)

		worst, err := ladder.Worst()
		require.NoError(t, err)
		assertDecimal(t, "105", worst.Price)

		assert.Equal(t, int64(13), ladder.TotalQuantity())
	})

	t.Run("Empty ladder", func(t *testing.T) {
		ladder := mustLadder(t, SideBid)

		_, err := ladder.Best()
		assert.ErrorIs(t, err, ErrEmptyLadder)
		_, err = ladder.Worst()
		assert.ErrorIs(t, err, ErrEmptyLadder)
		assert.True(t, ladder.IsEmpty())
		assert.Equal(t, int64(0), ladder.TotalQuantity())
	})
}

func TestLadder_VWAP(t *testing.T) {
	ladder := mustLadder(t, SideBid, lvl("100", 10), lvl("99", 5), lvl("98", 5))

	testCases := []struct {
		name        string
		k           int
		expected    string
		expectedErr error
	}{
		{name: "first level", k: 1, expected: "100"},
		{name: "two levels", k: 2, expected: "99.6667"},
		{name: "all levels", k: 3, expected: "99.25"},
		{name: "too deep", k: 4, expectedErr: ErrInsufficientDepth},
		{name: "zero depth", k: 0, expectedErr: ErrInsufficientDepth},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ladder.VWAP(tc.k)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assertDecimal(t, tc.expected, got.Round(4))
		})
	}
}

func TestLadder_SplitEligible(t *testing.T) {
	t.Run("Asks split at limit", func(t *testing.T) {
		asks := mustLadder(t, SideAsk, lvl("101", 1), lvl("102", 2), lvl("103", 3))

		eligible, ineligible := asks.SplitEligible(dec("102"))

		assertLevels(t, []PriceLevel{lvl("101", 1), lvl("102", 2)}, eligible)
		assertLevels(t, []PriceLevel{lvl("103", 3)}, ineligible)
	})

	t.Run("Bids split at limit", func(t *testing.T) {
		bids := mustLadder(t, SideBid, lvl("100", 1), lvl("99", 2), lvl("98", 3))

		eligible, ineligible := bids.SplitEligible(dec("99.5"))

		assertLevels(t, []PriceLevel{lvl("100", 1)}, eligible)
		assertLevels(t, []PriceLevel{lvl("99", 2), lvl("98", 3)}, ineligible)
	})

	t.Run("Nothing eligible", func(t *testing.T) {
		asks := mustLadder(t, SideAsk, lvl("101", 1))

		eligible, ineligible := asks.SplitEligible(dec("100"))

		assert.True(t, eligible.IsEmpty())
		assert.Equal(t, 1, ineligible.Len())
	})

	t.Run("Everything eligible", func(t *testing.T) {
		asks := mustLadder(t, SideAsk, lvl("101", 1), lvl("102", 1))

		eligible, ineligible := asks.SplitEligible(dec("1000"))

		assert.Equal(t, 2, eligible.Len())
		assert.True(t, ineligible.IsEmpty())
	})

	t.Run("Concat restores the ladder", func(t *testing.T) {
		asks := mustLadder(t, SideAsk, lvl("101", 1), lvl("102", 2), lvl("103", 3))

		eligible, ineligible := asks.SplitEligible(dec("102"))
		joined := eligible.Concat(ineligible)

		assertLevels(t, asks.Levels(), joined)
		assert.Equal(t, SideAsk, joined.Side())
	})
}
