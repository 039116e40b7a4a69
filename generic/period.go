package generic

// =============================================================================
// PERIOD - A closed range of calendar dates
// =============================================================================

// Period is the closed date range [Start, End].
//
// A rental window is built with RentalWindow: the checkout day itself is
// never billed, the due date is.
type Period struct {
	Start TimePoint
	End   TimePoint
}

// RentalWindow returns the billable dates of a rental that starts on
// checkout and lasts days calendar days: (checkout, checkout+days].
// Zero or negative days yield an empty period.
func RentalWindow(checkout TimePoint, days int) Period {
	return Period{Start: checkout.AddDays(1), End: checkout.AddDays(days)}
}

// Contains returns true if the time point is within the period [Start, End]
func (p Period) Contains(t TimePoint) bool {
	return t.AfterOrEqual(p.Start) && t.BeforeOrEqual(p.End)
}

// IsEmpty reports whether the period holds no dates.
func (p Period) IsEmpty() bool {
	return p.End.Before(p.Start)
}

// Count returns how many days in the period satisfy match.
func (p Period) Count(match func(TimePoint) bool) int {
	n := 0
	for current := p.Start; current.BeforeOrEqual(p.End); current = current.AddDays(1) {
		if match(current) {
			n++
		}
	}
	return n
}

// String returns a string representation of the period.
func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}
