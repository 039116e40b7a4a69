package rental

import (
	"errors"
	"fmt"

	"github.com/warp/rental-engine/generic"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidDuration is returned when the rental day count is out of range.
	ErrInvalidDuration = errors.New("Rental day count must be 1 or greater.")

	// ErrInvalidDiscount is returned when the discount is outside 0-100 percent.
	ErrInvalidDiscount = errors.New("Discount percent must be between 0 and 100.")

	// ErrUnknownTool is returned when a tool code is not in the catalog.
	ErrUnknownTool = errors.New("unknown tool code")
)

// UnknownToolError names the tool code that was not found.
type UnknownToolError struct {
	Code string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("Invalid tool code: %s", e.Code)
}

func (e *UnknownToolError) Unwrap() error {
	return ErrUnknownTool
}

// RentalTooLongError reports a rental whose due date would lie beyond
// MaxRentalDays or outside the representable calendar.
type RentalTooLongError struct {
	Days int
}

func (e *RentalTooLongError) Error() string {
	return fmt.Sprintf("Rental day count must be at most %d, got %d.", MaxRentalDays, e.Days)
}

func (e *RentalTooLongError) Unwrap() error {
	return ErrInvalidDuration
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid checkout input.
// Every checkout failure is one; none are worth retrying.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidDuration) ||
		errors.Is(err, ErrInvalidDiscount) ||
		errors.Is(err, ErrUnknownTool) ||
		errors.Is(err, generic.ErrInvalidDate)
}

// IsNotFound returns true if the error indicates a missing catalog entry.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUnknownTool)
}
