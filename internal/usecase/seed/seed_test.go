package seed

import (
	"testing"

	"github.com/muhammadchandra19/limit-orderbook/pkg/config"
	"github.com/muhammadchandra19/limit-orderbook/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() config.SeedConfig {
	return config.SeedConfig{
		Levels:      10,
		BestBid:     decimal.NewFromInt(100),
		BestAsk:     decimal.NewFromInt(105),
		Tick:        decimal.NewFromInt(1),
		BidSizeMean: 100,
		BidSizeSD:   25,
		AskSizeMean: 100,
		AskSizeSD:   20,
		RandomSeed:  42,
	}
}

func TestGenerator_Book(t *testing.T) {
	gen, err := NewGenerator(defaultConfig())
	require.NoError(t, err)

	book, err := gen.Book()
	require.NoError(t, err)

	bids, asks := book.Bids().Levels(), book.Asks().Levels()
	require.Len(t, bids, 10)
	require.Len(t, asks, 10)

	for i := range bids {
		assert.True(t, bids[i].Price.Equal(decimal.NewFromInt(int64(100-i))), "bid %d at %s", i, bids[i].Price)
		assert.True(t, asks[i].Price.Equal(decimal.NewFromInt(int64(105+i))), "ask %d at %s", i, asks[i].Price)
		assert.GreaterOrEqual(t, bids[i].Quantity, int64(1))
		assert.GreaterOrEqual(t, asks[i].Quantity, int64(1))
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	first, err := NewGenerator(defaultConfig())
	require.NoError(t, err)
	second, err := NewGenerator(defaultConfig())
	require.NoError(t, err)

	a, err := first.Book()
	require.NoError(t, err)
	b, err := second.Book()
	require.NoError(t, err)

	assert.Equal(t, a.Rows(), b.Rows())
}

func TestGenerator_Seed(t *testing.T) {
	gen, err := NewGenerator(defaultConfig())
	require.NoError(t, err)
	assert.Equal(t, uint64(42), gen.Seed())

	cfg := defaultConfig()
	cfg.RandomSeed = 0
	clock, err := NewGenerator(cfg)
	require.NoError(t, err)
	require.NotZero(t, clock.Seed())

	book, err := clock.Book()
	require.NoError(t, err)

	cfg.RandomSeed = clock.Seed()
	replay, err := NewGenerator(cfg)
	require.NoError(t, err)
	again, err := replay.Book()
	require.NoError(t, err)
	assert.Equal(t, book.Rows(), again.Rows())
}

func TestGenerator_ClampsSizes(t *testing.T) {
	cfg := defaultConfig()
	cfg.BidSizeMean, cfg.BidSizeSD = -50, 1
	cfg.AskSizeMean, cfg.AskSizeSD = 0, 0

	gen, err := NewGenerator(cfg)
	require.NoError(t, err)

	book, err := gen.Book()
	require.NoError(t, err)

	for _, row := range book.Rows() {
		assert.Equal(t, int64(1), row.Quantity)
	}
}

func TestGenerator_FractionalTick(t *testing.T) {
	cfg := defaultConfig()
	cfg.Levels = 3
	cfg.Tick = decimal.RequireFromString("0.25")

	gen, err := NewGenerator(cfg)
	require.NoError(t, err)

	book, err := gen.Book()
	require.NoError(t, err)

	worst, err := book.Bids().Worst()
	require.NoError(t, err)
	assert.Equal(t, "99.5", worst.Price.String())
	worst, err = book.Asks().Worst()
	require.NoError(t, err)
	assert.Equal(t, "105.5", worst.Price.String())
}

func TestNewGenerator_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.SeedConfig)
		code   errors.ErrorCode
	}{
		{name: "no levels", mutate: func(c *config.SeedConfig) { c.Levels = 0 }, code: errors.InvalidLadderError},
		{name: "zero tick", mutate: func(c *config.SeedConfig) { c.Tick = decimal.Zero }, code: errors.InvalidPriceError},
		{name: "crossed", mutate: func(c *config.SeedConfig) { c.BestBid = decimal.NewFromInt(110) }, code: errors.InvalidLadderError},
		{name: "bids below zero", mutate: func(c *config.SeedConfig) { c.Levels = 200 }, code: errors.InvalidPriceError},
		{name: "negative deviation", mutate: func(c *config.SeedConfig) { c.AskSizeSD = -1 }, code: errors.InvalidQuantityError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)

			gen, err := NewGenerator(cfg)
			require.Error(t, err)
			assert.Nil(t, gen)
			assert.True(t, errors.ErrorCodeEquals(err, tt.code.String()), err.Error())
		})
	}
}
