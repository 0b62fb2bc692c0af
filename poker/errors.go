package poker

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is returned for malformed card or range text.
	ErrParse = errors.New("parse error")
	// ErrInvalidHand is returned for a wrong hole card count or board size.
	ErrInvalidHand = errors.New("invalid hand")
	// ErrConflict is returned when a card is used twice or is already known.
	ErrConflict = errors.New("card conflict")
	// ErrInvalidArgument is returned for out of range parameters.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ParseError describes malformed card text.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %s", e.Input, e.Reason)
}

// Unwrap lets errors.Is match ErrParse.
func (e *ParseError) Unwrap() error {
	return ErrParse
}
