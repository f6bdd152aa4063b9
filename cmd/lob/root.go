package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	orderbookv1 "github.com/muhammadchandra19/limit-orderbook/internal/domain/orderbook/v1"
	executionpublisher "github.com/muhammadchandra19/limit-orderbook/internal/usecase/execution-publisher"
	"github.com/muhammadchandra19/limit-orderbook/internal/usecase/seed"
	"github.com/muhammadchandra19/limit-orderbook/pkg/config"
	"github.com/muhammadchandra19/limit-orderbook/pkg/logger"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	format  string
	noColor bool
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	flags := &rootFlags{format: string(executionpublisher.FormatText)}

	root := &cobra.Command{
		Use:           "lob",
		Short:         "Simulate a two-sided limit order book",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	pf := root.PersistentFlags()
	pf.IntVar(&cfg.Seed.Levels, "levels", cfg.Seed.Levels, "price levels generated per side")
	pf.Uint64Var(&cfg.Seed.RandomSeed, "seed", cfg.Seed.RandomSeed, "random seed for level sizes, 0 seeds from the clock")
	pf.IntVar(&cfg.View.VAMPDepth, "vamp-depth", cfg.View.VAMPDepth, "levels per side used for the micro-price")
	pf.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level: debug, info, warn or error")
	pf.StringVar(&flags.format, "format", flags.format, "output format: text or json")
	pf.BoolVar(&flags.noColor, "no-color", false, "disable coloured output")

	root.AddCommand(newShowCmd(cfg, flags), newRunCmd(cfg, flags))
	return root
}

// bootstrap builds the pieces shared by every command.
func bootstrap(cfg *config.Config, flags *rootFlags, out io.Writer) (*logger.Logger, orderbookv1.OrderBook, *executionpublisher.Publisher, error) {
	format := executionpublisher.Format(flags.format)
	if format != executionpublisher.FormatText && format != executionpublisher.FormatJSON {
		return nil, orderbookv1.OrderBook{}, nil, fmt.Errorf("unknown format %q", flags.format)
	}

	log, err := logger.NewLogger(
		logger.WithLoggingLevel(logger.Level(cfg.Log.Level)),
		logger.WithOutputPaths(cfg.Log.OutputPaths),
		logger.WithTimeKey(cfg.Log.TimeKey),
		logger.WithLevelKey(cfg.Log.LevelKey),
	)
	if err != nil {
		return nil, orderbookv1.OrderBook{}, nil, err
	}

	gen, err := seed.NewGenerator(cfg.Seed)
	if err != nil {
		return nil, orderbookv1.OrderBook{}, nil, err
	}
	book, err := gen.Book()
	if err != nil {
		return nil, orderbookv1.OrderBook{}, nil, err
	}

	publisher := executionpublisher.NewPublisher(out, log,
		executionpublisher.WithFormat(format),
		executionpublisher.WithMicroPriceDepth(cfg.View.VAMPDepth),
		executionpublisher.WithColor(!flags.noColor && isTerminal(out)),
	)

	log.Debug("book seeded",
		logger.NewField("levels", cfg.Seed.Levels),
		logger.NewField("seed", gen.Seed()),
	)
	return log, book, publisher, nil
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
