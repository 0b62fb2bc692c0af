package analysis

import "github.com/lox/holdem/poker"

// Errors returned by this package; they are the poker package sentinels so
// callers can test with errors.Is against either.
var (
	ErrParse           = poker.ErrParse
	ErrInvalidHand     = poker.ErrInvalidHand
	ErrConflict        = poker.ErrConflict
	ErrInvalidArgument = poker.ErrInvalidArgument
)
