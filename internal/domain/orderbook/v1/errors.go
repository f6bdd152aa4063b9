package orderbookv1

import "errors"

// Errors returned by book construction, queries and order submission.
var (
	ErrEmptyLadder       = errors.New("ladder has no levels")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInvalidPrice      = errors.New("price must be positive")
	ErrInsufficientDepth = errors.New("not enough levels for requested depth")
	ErrInvalidLadder     = errors.New("ladder levels are not strictly ordered")
	ErrCrossedBook       = errors.New("best bid must be below best ask")
	ErrUnknownSide       = errors.New("unknown order side")
	ErrUnknownOrderType  = errors.New("unknown order type")
)
