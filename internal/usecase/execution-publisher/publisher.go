package executionpublisher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/fatih/color"
	executionpublisherv1 "github.com/muhammadchandra19/limit-orderbook/internal/domain/execution-publisher/v1"
	orderbookv1 "github.com/muhammadchandra19/limit-orderbook/internal/domain/orderbook/v1"
	"github.com/muhammadchandra19/limit-orderbook/pkg/errors"
	"github.com/muhammadchandra19/limit-orderbook/pkg/logger"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
)

// Format selects how executions are written.
type Format string

const (
	// FormatText writes a report line, the summary strip and the level table.
	FormatText Format = "text"
	// FormatJSON writes one JSON document per execution.
	FormatJSON Format = "json"
)

// Publisher writes execution reports to an io.Writer.
// It implements the ExecutionPublisher interface.
type Publisher struct {
	mu       sync.Mutex
	out      io.Writer
	logger   logger.Interface
	format   Format
	depth    int
	showBook bool

	bid, ask, reject *color.Color
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithFormat sets the output format. Text is the default.
func WithFormat(format Format) Option {
	return func(p *Publisher) {
		p.format = format
	}
}

// WithMicroPriceDepth sets k for the micro-price in the summary strip.
func WithMicroPriceDepth(k int) Option {
	return func(p *Publisher) {
		p.depth = k
	}
}

// WithBook controls whether the refreshed book follows each text report.
func WithBook(show bool) Option {
	return func(p *Publisher) {
		p.showBook = show
	}
}

// WithColor enables or disables ANSI colouring of text output.
func WithColor(enabled bool) Option {
	return func(p *Publisher) {
		for _, c := range []*color.Color{p.bid, p.ask, p.reject} {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

// NewPublisher creates a Publisher writing to out.
func NewPublisher(out io.Writer, log logger.Interface, opts ...Option) *Publisher {
	p := &Publisher{
		out:      out,
		logger:   log,
		format:   FormatText,
		depth:    4,
		showBook: true,
		bid:      color.New(color.FgGreen),
		ask:      color.New(color.FgRed),
		reject:   color.New(color.FgYellow, color.Bold),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish writes a single execution report.
func (p *Publisher) Publish(ctx context.Context, execution executionpublisherv1.Execution) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var err error
	switch p.format {
	case FormatJSON:
		err = p.writeJSON(execution)
	default:
		err = p.writeText(execution)
	}
	if err != nil {
		p.logger.ErrorContext(ctx, err,
			logger.NewField("operation", "Publish"),
			logger.NewField("sequence", execution.Sequence),
		)
		return errors.NewTracer("failed to publish execution").Wrap(err)
	}
	return nil
}

// RenderBook writes the summary strip and level table for book.
func (p *Publisher) RenderBook(book orderbookv1.OrderBook) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.format == FormatJSON {
		return json.NewEncoder(p.out).Encode(bookDocument{
			Summary: book.Summary(p.depth),
			Levels:  book.Rows(),
		})
	}
	return p.writeBook(book)
}

func (p *Publisher) writeText(execution executionpublisherv1.Execution) error {
	if _, err := io.WriteString(p.out, p.report(execution)+"\n"); err != nil {
		return err
	}
	if !p.showBook {
		return nil
	}
	return p.writeBook(execution.Book)
}

func (p *Publisher) report(execution executionpublisherv1.Execution) string {
	prefix := "#" + strconv.FormatInt(execution.Sequence, 10)
	if execution.Rejected() {
		return fmt.Sprintf("%s %s %s", prefix, p.reject.Sprint("rejected"), execution.Err)
	}

	req := execution.Request
	order := fmt.Sprintf("%s %s", p.sideColor(req.Side).Sprint(req.Side), req.Type)
	if req.Price.Valid {
		order += " " + req.Price.Decimal.String()
	}
	order += fmt.Sprintf(" x%d", req.Quantity)

	trade := execution.Trade
	line := fmt.Sprintf("%s %s: executed %d for %s", prefix, order, trade.ExecutedQuantity, trade.Proceeds)
	if avg, ok := trade.AveragePrice(); ok {
		line += " (avg " + avg.Round(4).String() + ")"
	}
	if rested := execution.Rested(); rested > 0 {
		line += fmt.Sprintf(", rested %d", rested)
	}
	if unfilled := req.Quantity - trade.ExecutedQuantity; req.Type == orderbookv1.OrderTypeMarket && unfilled > 0 {
		line += fmt.Sprintf(", %d unfilled", unfilled)
	}
	return line
}

func (p *Publisher) writeBook(book orderbookv1.OrderBook) error {
	if _, err := io.WriteString(p.out, p.summaryLine(book.Summary(p.depth))+"\n"); err != nil {
		return err
	}

	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"Price", "Quantity", "Side"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetAutoFormatHeaders(false)
	for _, row := range book.Rows() {
		table.Append([]string{
			row.Price.String(),
			strconv.FormatInt(row.Quantity, 10),
			p.sideColor(row.Side).Sprint(row.Side),
		})
	}
	table.Render()
	return nil
}

func (p *Publisher) summaryLine(s orderbookv1.Summary) string {
	return fmt.Sprintf("best bid %s | mid %s | vamp(%d) %s | best ask %s | spread %s | depth %s",
		p.bid.Sprint(show(s.BestBid)),
		show(s.Mid),
		s.Depth,
		show(s.MicroPrice),
		p.ask.Sprint(show(s.BestAsk)),
		show(s.Spread),
		show(s.MarketDepth),
	)
}

func (p *Publisher) sideColor(side orderbookv1.Side) *color.Color {
	if side == orderbookv1.SideBid {
		return p.bid
	}
	return p.ask
}

func show(d decimal.NullDecimal) string {
	if !d.Valid {
		return "-"
	}
	return d.Decimal.Round(4).String()
}

type executionDocument struct {
	Sequence  int64                          `json:"sequence"`
	Timestamp time.Time                      `json:"timestamp"`
	Order     orderbookv1.SubmitOrderRequest `json:"order"`
	Trade     *tradeDocument                 `json:"trade,omitempty"`
	Error     string                         `json:"error,omitempty"`
	Book      bookDocument                   `json:"book"`
}

type tradeDocument struct {
	ExecutedQuantity int64               `json:"executedQuantity"`
	Proceeds         decimal.Decimal     `json:"proceeds"`
	AveragePrice     decimal.NullDecimal `json:"averagePrice"`
}

type bookDocument struct {
	Summary orderbookv1.Summary   `json:"summary"`
	Levels  []orderbookv1.BookRow `json:"levels,omitempty"`
}

func (p *Publisher) writeJSON(execution executionpublisherv1.Execution) error {
	doc := executionDocument{
		Sequence:  execution.Sequence,
		Timestamp: execution.Timestamp,
		Order:     execution.Request,
		Book:      bookDocument{Summary: execution.Book.Summary(p.depth)},
	}
	if p.showBook {
		doc.Book.Levels = execution.Book.Rows()
	}

	if execution.Rejected() {
		doc.Error = execution.Err.Error()
	} else {
		trade := &tradeDocument{
			ExecutedQuantity: execution.Trade.ExecutedQuantity,
			Proceeds:         execution.Trade.Proceeds,
		}
		if avg, ok := execution.Trade.AveragePrice(); ok {
			trade.AveragePrice = decimal.NewNullDecimal(avg)
		}
		doc.Trade = trade
	}

	return json.NewEncoder(p.out).Encode(doc)
}
