package engine

import (
	"context"
	stderrors "errors"
	"io"
	"sync"
	"time"

	executionpublisherv1 "github.com/muhammadchandra19/limit-orderbook/internal/domain/execution-publisher/v1"
	orderreaderv1 "github.com/muhammadchandra19/limit-orderbook/internal/domain/order-reader/v1"
	orderbookv1 "github.com/muhammadchandra19/limit-orderbook/internal/domain/orderbook/v1"
	"github.com/muhammadchandra19/limit-orderbook/pkg/errors"
	"github.com/muhammadchandra19/limit-orderbook/pkg/logger"
	"github.com/muhammadchandra19/limit-orderbook/pkg/util"
)

// OrderSubmitter applies orders to the current book.
type OrderSubmitter interface {
	Current() orderbookv1.OrderBook
	SubmitOrder(ctx context.Context, req orderbookv1.SubmitOrderRequest) (orderbookv1.TradeResult, orderbookv1.OrderBook, error)
}

// Engine reads orders, applies them to the book and publishes the outcome.
type Engine struct {
	// Core components
	orderbook          OrderSubmitter
	orderReader        orderreaderv1.OrderReader
	executionPublisher executionpublisherv1.ExecutionPublisher
	logger             logger.Interface

	// Shutdown coordination
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	done   chan struct{}

	readBackoff     time.Duration
	maxReadFailures int

	mu        sync.RWMutex
	sequence  int64
	processed int64
	rejected  int64
	err       error
}

// NewEngine creates a new instance of Engine with the provided dependencies.
func NewEngine(
	orderbook OrderSubmitter,
	orderReader orderreaderv1.OrderReader,
	executionPublisher executionpublisherv1.ExecutionPublisher,
	log logger.Interface,
) *Engine {
	return NewEngineWithOptions(orderbook, orderReader, executionPublisher, log, DefaultEngineOptions())
}

// NewEngineWithOptions creates a new engine with custom options
func NewEngineWithOptions(
	orderbook OrderSubmitter,
	orderReader orderreaderv1.OrderReader,
	executionPublisher executionpublisherv1.ExecutionPublisher,
	log logger.Interface,
	options *Options,
) *Engine {
	if options == nil {
		options = DefaultEngineOptions()
	}

	return &Engine{
		orderbook:          orderbook,
		orderReader:        orderReader,
		executionPublisher: executionPublisher,
		logger:             log.WithFields(logger.NewField("component", "engine")),
		done:               make(chan struct{}),
		readBackoff:        options.ReadBackoff,
		maxReadFailures:    options.MaxReadFailures,
	}
}

// Start launches the order processor.
func (e *Engine) Start(ctx context.Context) error {
	e.ctx, e.cancel = context.WithCancel(ctx)

	e.wg.Add(1)
	go e.runOrderProcessor()

	e.logger.Info("Engine started")
	return nil
}

// Stop gracefully shuts down the engine
func (e *Engine) Stop(ctx context.Context) error {
	if e.cancel != nil {
		e.cancel()
	}

	// Wait for goroutines to finish with timeout
	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		e.logger.Info("Engine stopped gracefully")
		return nil
	case <-ctx.Done():
		e.logger.Warn("Engine stop timeout exceeded")
		return ctx.Err()
	}
}

// Done is closed once the order processor has exited, either because the
// source was exhausted, the engine was stopped or the reader kept failing.
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

// Err returns the error that made the processor give up, if any.
func (e *Engine) Err() error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.err
}

// runOrderProcessor combines order reading and processing in a single goroutine
func (e *Engine) runOrderProcessor() {
	defer e.wg.Done()
	defer close(e.done)
	defer func() {
		if err := e.orderReader.Close(); err != nil {
			e.logger.Error(err, logger.NewField("action", "close_order_reader"))
		}
	}()

	e.logger.Info("Starting order processor")

	failures := 0
	for {
		select {
		case <-e.ctx.Done():
			e.logger.Info("Order processor shutting down")
			return
		default:
		}

		orderRequest, err := e.orderReader.ReadOrder(e.ctx)
		if err != nil {
			switch {
			case stderrors.Is(err, io.EOF):
				e.logger.Info("Order source exhausted")
				return
			case e.ctx.Err() != nil:
				continue
			case orderreaderv1.IsRejected(err):
				failures = 0
				e.publish(e.nextSequence(), orderRequest, orderbookv1.TradeResult{}, e.orderbook.Current(), err)
				continue
			}

			failures++
			e.logger.ErrorContext(e.ctx, err,
				logger.NewField("action", "read_order"),
				logger.NewField("failures", failures),
			)
			if e.maxReadFailures > 0 && failures >= e.maxReadFailures {
				e.setErr(errors.NewTracerf("order reader failed %d times in a row", failures).Wrap(err))
				return
			}
			e.backoff()
			continue
		}

		failures = 0
		e.processOrder(orderRequest)
	}
}

// processOrder submits a single order request and publishes the outcome
func (e *Engine) processOrder(orderRequest orderbookv1.SubmitOrderRequest) {
	ctx := util.WithRequestID(e.ctx, "")
	seq := e.nextSequence()

	e.logger.DebugContext(ctx, "Processing order",
		logger.NewField("sequence", seq),
		logger.NewField("side", orderRequest.Side),
		logger.NewField("type", orderRequest.Type),
	)

	trade, book, err := e.orderbook.SubmitOrder(ctx, orderRequest)
	e.publish(seq, orderRequest, trade, book, err)
}

func (e *Engine) publish(seq int64, req orderbookv1.SubmitOrderRequest, trade orderbookv1.TradeResult, book orderbookv1.OrderBook, err error) {
	e.mu.Lock()
	e.processed++
	if err != nil {
		e.rejected++
	}
	e.mu.Unlock()

	// the order is already applied, so its report outlives a shutdown
	execution := executionpublisherv1.NewExecution(seq, req, trade, book, err)
	if perr := e.executionPublisher.Publish(context.WithoutCancel(e.ctx), execution); perr != nil {
		e.logger.ErrorContext(e.ctx, perr,
			logger.NewField("action", "publish_execution"),
			logger.NewField("sequence", seq),
		)
	}
}

func (e *Engine) backoff() {
	timer := time.NewTimer(e.readBackoff)
	defer timer.Stop()

	select {
	case <-e.ctx.Done():
	case <-timer.C:
	}
}

func (e *Engine) nextSequence() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sequence++
	return e.sequence
}

func (e *Engine) setErr(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.err = err
}

// GetProcessed returns the number of orders handled, rejections included.
func (e *Engine) GetProcessed() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.processed
}

// GetRejected returns the number of orders that were refused.
func (e *Engine) GetRejected() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.rejected
}
