package orderreader

import (
	"bufio"
	"context"
	"io"
	"sync"

	orderbookv1 "github.com/muhammadchandra19/limit-orderbook/internal/domain/orderbook/v1"
	"github.com/muhammadchandra19/limit-orderbook/pkg/errors"
	"github.com/muhammadchandra19/limit-orderbook/pkg/logger"
	"github.com/shopspring/decimal"
)

// BookSource exposes the book a price band is measured against.
type BookSource interface {
	Current() orderbookv1.OrderBook
}

type line struct {
	number int
	text   string
	err    error
}

// Reader reads one order command per line from an io.Reader.
// It implements the OrderReader interface.
type Reader struct {
	lines  chan line
	source io.Reader
	closer io.Closer
	logger logger.Interface

	book BookSource
	band decimal.Decimal

	closeOnce sync.Once
	done      chan struct{}
}

// Option configures a Reader.
type Option func(*Reader)

// WithPriceBand rejects limit prices further than band (a fraction, 0.10 for 10%)
// from the current mid price. Without a mid the band is not applied.
func WithPriceBand(book BookSource, band decimal.Decimal) Option {
	return func(r *Reader) {
		r.book = book
		r.band = band
	}
}

// NewReader starts scanning source. queueSize bounds how many lines are read ahead.
// The source is left open by Close.
func NewReader(source io.Reader, queueSize int, log logger.Interface, opts ...Option) *Reader {
	return newReader(source, nil, queueSize, log, opts)
}

// NewReadCloser is NewReader for a source the Reader owns: Close also closes it.
func NewReadCloser(source io.ReadCloser, queueSize int, log logger.Interface, opts ...Option) *Reader {
	return newReader(source, source, queueSize, log, opts)
}

func newReader(source io.Reader, closer io.Closer, queueSize int, log logger.Interface, opts []Option) *Reader {
	if queueSize < 1 {
		queueSize = 1
	}

	r := &Reader{
		lines:  make(chan line, queueSize),
		source: source,
		closer: closer,
		logger: log,
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}

	go r.scan()
	return r
}

func (r *Reader) scan() {
	defer close(r.lines)

	scanner := bufio.NewScanner(r.source)
	number := 0
	for scanner.Scan() {
		number++
		select {
		case r.lines <- line{number: number, text: scanner.Text()}:
		case <-r.done:
			return
		}
	}

	if err := scanner.Err(); err != nil {
		select {
		case r.lines <- line{number: number, err: errors.TracerFromError(err)}:
		case <-r.done:
		}
	}
}

// ReadOrder returns the next order, skipping blank and comment lines. It returns
// io.EOF once the source is exhausted.
func (r *Reader) ReadOrder(ctx context.Context) (orderbookv1.SubmitOrderRequest, error) {
	for {
		select {
		case <-ctx.Done():
			return orderbookv1.SubmitOrderRequest{}, ctx.Err()
		case l, open := <-r.lines:
			if !open {
				return orderbookv1.SubmitOrderRequest{}, io.EOF
			}
			if l.err != nil {
				r.logError(l.err, "Scan")
				return orderbookv1.SubmitOrderRequest{}, l.err
			}

			req, ok, err := ParseLine(l.text)
			if !ok {
				continue
			}
			if err == nil {
				err = r.checkBand(req)
			}
			if err != nil {
				r.logger.WarnContext(ctx, "order line rejected",
					logger.NewField("line", l.number),
					logger.NewField("error", err.Error()),
				)
				return orderbookv1.SubmitOrderRequest{}, err
			}

			r.logger.DebugContext(ctx, "ReadOrder",
				logger.NewField("line", l.number),
				logger.NewField("orderID", req.ID),
				logger.NewField("side", req.Side),
				logger.NewField("type", req.Type),
				logger.NewField("quantity", req.Quantity),
			)
			return req, nil
		}
	}
}

func (r *Reader) checkBand(req orderbookv1.SubmitOrderRequest) error {
	if r.book == nil || !r.band.IsPositive() || req.Type != orderbookv1.OrderTypeLimit || !req.Price.Valid {
		return nil
	}

	mid, err := r.book.Current().MidPrice()
	if err != nil {
		return nil
	}

	low := mid.Mul(decimal.NewFromInt(1).Sub(r.band))
	high := mid.Mul(decimal.NewFromInt(1).Add(r.band))
	price := req.Price.Decimal
	if price.LessThan(low) || price.GreaterThan(high) {
		return errors.NewBaseError(parseDetails(
			"price "+price.String()+" outside ["+low.String()+", "+high.String()+"]", "price"))
	}
	return nil
}

// Close stops scanning and, for a Reader built with NewReadCloser, closes the source.
func (r *Reader) Close() error {
	var err error
	r.closeOnce.Do(func() {
		close(r.done)
		if r.closer == nil {
			return
		}
		if err = r.closer.Close(); err != nil {
			r.logError(err, "Close")
		}
	})
	return err
}

func (r *Reader) logError(err error, operation string) {
	r.logger.Error(err,
		logger.NewField("error", err.Error()),
		logger.NewField("operation", operation),
	)
}
