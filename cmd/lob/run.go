package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muhammadchandra19/limit-orderbook/internal/app/engine"
	orderreader "github.com/muhammadchandra19/limit-orderbook/internal/usecase/order-reader"
	"github.com/muhammadchandra19/limit-orderbook/internal/usecase/orderbook"
	"github.com/muhammadchandra19/limit-orderbook/pkg/config"
	"github.com/muhammadchandra19/limit-orderbook/pkg/logger"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func newRunCmd(cfg *config.Config, flags *rootFlags) *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Seed a book and apply orders read one per line",
		Long: `Seed a book and apply orders read one per line from stdin or --file.

  bid limit 101 25     buy up to 25 at 101 or better, rest the remainder
  ask market 40        sell 40 against the best bids
  b l 99.5 10          short form

Blank lines and text after # are ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cfg, flags, inputPath, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&inputPath, "file", "f", "", "read orders from a file instead of stdin")
	return cmd
}

// run reads orders from inputPath, or from stdin when inputPath is empty.
func run(parent context.Context, cfg *config.Config, flags *rootFlags, inputPath string, stdin io.Reader, out io.Writer) error {
	if parent == nil {
		parent = context.Background()
	}

	log, book, publisher, err := bootstrap(cfg, flags, out)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := publisher.RenderBook(book); err != nil {
		return err
	}

	cell := orderbook.New(book, log)
	band := orderreader.WithPriceBand(cell, cfg.View.PriceBand)
	var reader *orderreader.Reader
	if inputPath == "" {
		reader = orderreader.NewReader(stdin, cfg.Engine.QueueSize, log, band)
	} else {
		f, err := os.Open(inputPath)
		if err != nil {
			return err
		}
		reader = orderreader.NewReadCloser(f, cfg.Engine.QueueSize, log, band)
	}
	eng := engine.NewEngineWithOptions(cell, reader, publisher, log, &engine.Options{
		ReadBackoff:     cfg.Engine.ReadBackoff,
		MaxReadFailures: engine.DefaultEngineOptions().MaxReadFailures,
	})

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := eng.Start(ctx); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		select {
		case <-eng.Done():
			stop()
			return eng.Err()
		case <-gctx.Done():
			return nil
		}
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return eng.Stop(shutdownCtx)
	})

	err = g.Wait()

	stats := cell.Stats()
	log.Info("session finished",
		logger.NewField("processed", eng.GetProcessed()),
		logger.NewField("accepted", stats.Accepted),
		logger.NewField("rejected", stats.Rejected),
		logger.NewField("executedQuantity", stats.ExecutedQuantity),
		logger.NewField("proceeds", stats.Proceeds.String()),
	)
	return err
}
