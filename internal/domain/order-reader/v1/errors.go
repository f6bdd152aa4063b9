package orderreaderv1

import "github.com/muhammadchandra19/limit-orderbook/pkg/errors"

// IsRejected reports whether err describes input the reader refused, as opposed to a
// failure of the source itself.
func IsRejected(err error) bool {
	return errors.ErrorCodeEquals(err, errors.OrderParseError.String())
}
