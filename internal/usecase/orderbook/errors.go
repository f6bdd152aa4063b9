package orderbook

import (
	stderrors "errors"

	orderbookv1 "github.com/muhammadchandra19/limit-orderbook/internal/domain/orderbook/v1"
	"github.com/muhammadchandra19/limit-orderbook/pkg/errors"
)

// submitErrorCodes maps submission failures to the code and request field they concern.
var submitErrorCodes = []struct {
	target error
	code   errors.ErrorCode
	field  string
}{
	{orderbookv1.ErrInvalidQuantity, errors.InvalidQuantityError, "quantity"},
	{orderbookv1.ErrInvalidPrice, errors.InvalidPriceError, "price"},
	{orderbookv1.ErrUnknownSide, errors.GeneralBadRequestError, "side"},
	{orderbookv1.ErrUnknownOrderType, errors.GeneralBadRequestError, "type"},
}

// classify attaches an error code to err. The core error stays reachable through errors.Is.
func classify(err error) *errors.ErrorDetails {
	for _, c := range submitErrorCodes {
		if stderrors.Is(err, c.target) {
			return errors.NewErrorDetailsFromError(err, c.code, c.field)
		}
	}
	return errors.NewErrorDetailsFromError(err, errors.GeneralInternalServerError, "")
}
