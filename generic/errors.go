/*
errors.go - Shared error types for the rental engine

PURPOSE:
  Domain-neutral errors raised by the primitives in this package.
  The rental package defines its own sentinels for rental
  validation and classifies both kinds for callers.

ERROR CATEGORIES:
  1. Parse errors - Text that is not a valid date or amount

USAGE:
    if errors.Is(err, generic.ErrInvalidDate) {
        // bad checkout date from the caller
    }

SEE ALSO:
  - time.go: ParseShortDate returns DateParseError
  - rental/errors.go: rental validation errors
*/
package generic

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidDate is returned when a date string does not match the expected layout.
	ErrInvalidDate = errors.New("invalid date")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// DateParseError provides details about a date that could not be parsed.
type DateParseError struct {
	Input  string
	Layout string
	Err    error // underlying time.Parse error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("invalid date %q (expected %s): %v", e.Input, e.Layout, e.Err)
}

func (e *DateParseError) Unwrap() []error {
	return []error{ErrInvalidDate, e.Err}
}
