package service

import (
	"errors"
	"fmt"
)

// FormatError reports a line that does not carry enough fields, or
// carries unparsable fields, for its record type. Load paths that
// tolerate bad lines skip the line and keep going.
type FormatError struct {
	Line   int // 1-based line number when known, 0 otherwise
	Reason string
	Err    error // optional sentinel for callers that single out a case
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	return e.Reason
}

func (e *FormatError) Unwrap() error { return e.Err }

// IsFormatError reports whether err is a recoverable format error.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

var (
	// ErrUnknownConcert marks a booking that references a concert id
	// missing from the catalog.
	ErrUnknownConcert = errors.New("unknown concert id")
	// ErrNoVenues means no venue template was loaded before concerts.
	ErrNoVenues = errors.New("no venue templates loaded")

	ErrCustomerNotFound  = errors.New("customer does not exist")
	ErrIncorrectPassword = errors.New("incorrect password")

	// errZeroSeats marks a booking line that declares no seats. Such
	// lines are skipped during replay in both strict and lenient mode.
	errZeroSeats = errors.New("zero-seat booking")
)
