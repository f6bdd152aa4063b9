package seed

import (
	"math"
	"math/rand/v2"
	"time"

	orderbookv1 "github.com/muhammadchandra19/limit-orderbook/internal/domain/orderbook/v1"
	"github.com/muhammadchandra19/limit-orderbook/pkg/config"
	"github.com/muhammadchandra19/limit-orderbook/pkg/errors"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat/distuv"
)

// Generator builds a starting order book with evenly spaced prices and normally
// distributed level sizes.
type Generator struct {
	cfg  config.SeedConfig
	seed uint64
	bid  distuv.Normal
	ask  distuv.Normal
}

// NewGenerator validates cfg and returns a Generator. A RandomSeed of 0 seeds from the clock.
func NewGenerator(cfg config.SeedConfig) (*Generator, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)

	return &Generator{
		cfg:  cfg,
		seed: seed,
		bid:  distuv.Normal{Mu: cfg.BidSizeMean, Sigma: cfg.BidSizeSD, Src: src},
		ask:  distuv.Normal{Mu: cfg.AskSizeMean, Sigma: cfg.AskSizeSD, Src: src},
	}, nil
}

// Seed returns the random seed in use, which is the clock-derived one when
// RandomSeed was 0. Passing it back as RandomSeed reproduces the book.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Book returns a fresh book: bids at bestBid, bestBid-tick, ... and asks at
// bestAsk, bestAsk+tick, ...
func (g *Generator) Book() (orderbookv1.OrderBook, error) {
	bids := make([]orderbookv1.PriceLevel, 0, g.cfg.Levels)
	asks := make([]orderbookv1.PriceLevel, 0, g.cfg.Levels)

	for i := 0; i < g.cfg.Levels; i++ {
		offset := g.cfg.Tick.Mul(decimal.NewFromInt(int64(i)))
		bids = append(bids, orderbookv1.PriceLevel{Price: g.cfg.BestBid.Sub(offset), Quantity: size(g.bid.Rand())})
		asks = append(asks, orderbookv1.PriceLevel{Price: g.cfg.BestAsk.Add(offset), Quantity: size(g.ask.Rand())})
	}

	book, err := orderbookv1.NewOrderBook(bids, asks)
	if err != nil {
		return orderbookv1.OrderBook{}, errors.NewTracer("seed_book_error").Wrap(err)
	}
	return book, nil
}

// size rounds a sample to a whole quantity of at least one.
func size(sample float64) int64 {
	return int64(math.Max(1, math.Round(sample)))
}

func validate(cfg config.SeedConfig) error {
	base := errors.NewBaseError()

	if cfg.Levels < 1 {
		base.AddErrorDetails(errors.NewErrorDetails("levels must be at least 1", errors.InvalidLadderError.String(), "levels"))
	}
	if !cfg.Tick.IsPositive() {
		base.AddErrorDetails(errors.NewErrorDetails("tick must be positive", errors.InvalidPriceError.String(), "tick"))
	}
	if !cfg.BestBid.LessThan(cfg.BestAsk) {
		base.AddErrorDetails(errors.NewErrorDetails("best bid must be below best ask", errors.InvalidLadderError.String(), "best_bid"))
	}
	if cfg.Levels >= 1 && cfg.Tick.IsPositive() {
		worstBid := cfg.BestBid.Sub(cfg.Tick.Mul(decimal.NewFromInt(int64(cfg.Levels - 1))))
		if !worstBid.IsPositive() {
			base.AddErrorDetails(errors.NewErrorDetails("deepest bid must stay above zero", errors.InvalidPriceError.String(), "levels"))
		}
	}
	if cfg.BidSizeSD < 0 || cfg.AskSizeSD < 0 {
		base.AddErrorDetails(errors.NewErrorDetails("size deviation must not be negative", errors.InvalidQuantityError.String(), "size_sd"))
	}

	if base.HasDetails() {
		base.PrependFields("seed.")
		return base
	}
	return nil
}
