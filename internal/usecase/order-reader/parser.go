package orderreader

import (
	"strconv"
	"strings"

	orderbookv1 "github.com/muhammadchandra19/limit-orderbook/internal/domain/orderbook/v1"
	"github.com/muhammadchandra19/limit-orderbook/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	sides = map[string]orderbookv1.Side{
		"b": orderbookv1.SideBid, "bid": orderbookv1.SideBid, "buy": orderbookv1.SideBid,
		"a": orderbookv1.SideAsk, "ask": orderbookv1.SideAsk, "sell": orderbookv1.SideAsk,
	}
	orderTypes = map[string]orderbookv1.OrderType{
		"l": orderbookv1.OrderTypeLimit, "limit": orderbookv1.OrderTypeLimit,
		"m": orderbookv1.OrderTypeMarket, "market": orderbookv1.OrderTypeMarket,
	}
)

// ParseLine turns a command such as "bid limit 101 25" or "a m 40" into a request.
// ok is false for blank lines and comments.
func ParseLine(line string) (req orderbookv1.SubmitOrderRequest, ok bool, err error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return orderbookv1.SubmitOrderRequest{}, false, nil
	}

	base := errors.NewBaseError()
	if len(fields) < 3 {
		base.AddErrorDetails(parseDetails("expected <side> <type> [price] <quantity>", "command"))
		return orderbookv1.SubmitOrderRequest{}, true, base
	}

	side, known := sides[fields[0]]
	if !known {
		base.AddErrorDetails(parseDetails("unknown side "+strconv.Quote(fields[0]), "side"))
	}
	orderType, known := orderTypes[fields[1]]
	if !known {
		base.AddErrorDetails(parseDetails("unknown order type "+strconv.Quote(fields[1]), "type"))
	}
	if base.HasDetails() {
		return orderbookv1.SubmitOrderRequest{}, true, base
	}

	args := fields[2:]
	switch {
	case orderType == orderbookv1.OrderTypeLimit && len(args) != 2:
		base.AddErrorDetails(parseDetails("limit orders take a price and a quantity", "command"))
		return orderbookv1.SubmitOrderRequest{}, true, base
	case orderType == orderbookv1.OrderTypeMarket && len(args) != 1:
		base.AddErrorDetails(parseDetails("market orders take only a quantity", "command"))
		return orderbookv1.SubmitOrderRequest{}, true, base
	}

	quantity, qerr := strconv.ParseInt(args[len(args)-1], 10, 64)
	if qerr != nil {
		base.AddErrorDetails(parseDetails("quantity must be a whole number", "quantity"))
	}

	if orderType == orderbookv1.OrderTypeMarket {
		if base.HasDetails() {
			return orderbookv1.SubmitOrderRequest{}, true, base
		}
		return orderbookv1.NewMarketOrder(side, quantity), true, nil
	}

	price, perr := decimal.NewFromString(args[0])
	if perr != nil {
		base.AddErrorDetails(parseDetails("price must be a decimal number", "price"))
	}
	if base.HasDetails() {
		return orderbookv1.SubmitOrderRequest{}, true, base
	}
	return orderbookv1.NewLimitOrder(side, price, quantity), true, nil
}

func parseDetails(message, field string) *errors.ErrorDetails {
	return errors.NewErrorDetails(message, errors.OrderParseError.String(), field)
}
