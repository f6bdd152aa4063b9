package errors

import (
	"bytes"
	"strings"
)

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a failure that has no more specific code.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents a request with an unknown side or order type.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"

	// InvalidQuantityError represents an order whose quantity is not positive.
	InvalidQuantityError ErrorCode = "invalid_quantity"
	// InvalidPriceError represents a limit order with a missing or non-positive price.
	InvalidPriceError ErrorCode = "invalid_price"
	// InvalidLadderError represents seed levels that break price priority or the uncrossed book.
	InvalidLadderError ErrorCode = "invalid_ladder"
	// OrderParseError represents an order line that could not be turned into a request.
	OrderParseError ErrorCode = "order_parse_error"
)

func (c ErrorCode) String() string {
	return string(c)
}

// BaseError is an `error` type containing an array of ErrorDetails.
type BaseError struct {
	details []*ErrorDetails
}

// NewBaseError create BaseError with ErrorDetails
func NewBaseError(details ...*ErrorDetails) *BaseError {
	return &BaseError{details: details}
}

// AddErrorDetails add more ErrorDetails to BaseError
func (b *BaseError) AddErrorDetails(errors ...*ErrorDetails) {
	b.details = append(b.details, errors...)
}

// GetDetails get array ErrorDetails on BaseError
func (b *BaseError) GetDetails() []*ErrorDetails {
	return b.details
}

// HasDetails reports whether any ErrorDetails were collected.
func (b *BaseError) HasDetails() bool {
	return len(b.details) > 0
}

// Error implement error interface
func (b *BaseError) Error() string {
	buff := bytes.NewBufferString("")

	for _, err := range b.details {
		buff.WriteString(err.Code)
		buff.WriteString(": ")
		buff.WriteString(err.Error())
		if err.Field != "" {
			buff.WriteString(" (")
			buff.WriteString(err.Field)
			buff.WriteString(")")
		}
		buff.WriteString("; ")
	}

	return strings.TrimSuffix(strings.TrimSpace(buff.String()), ";")
}

// PrependFields prepend all field on ErrorDetails with given prefix. Will skip ErrorDetail without field
func (b *BaseError) PrependFields(prefix string) {
	for _, d := range b.GetDetails() {
		if d.Field == "" {
			continue
		}
		d.Field = prefix + d.Field
	}
}

// IsAnyCodeEqual check if any ErrorDetails code is equal with given code
func (b *BaseError) IsAnyCodeEqual(code string) bool {
	for _, d := range b.GetDetails() {
		if d.Code == code {
			return true
		}
	}
	return false
}
