package generic

import (
	"time"
)

// =============================================================================
// TIME POINT - Calendar date with no time-of-day (rentals are billed per day)
// =============================================================================

// TimePoint is a calendar date. The wrapped time is always midnight UTC so
// date arithmetic never crosses a daylight-saving boundary.
type TimePoint struct {
	Time time.Time
}

// Constructors
func NewTimePoint(year int, month time.Month, day int) TimePoint {
	return TimePoint{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf drops the time-of-day and location of t, keeping its calendar date.
func DateOf(t time.Time) TimePoint {
	return NewTimePoint(t.Year(), t.Month(), t.Day())
}

// Today is the current date in the process's local time zone.
func Today() TimePoint {
	return DateOf(time.Now())
}

// Comparison
func (tp TimePoint) Before(other TimePoint) bool        { return tp.Time.Before(other.Time) }
func (tp TimePoint) Equal(other TimePoint) bool         { return tp.Time.Equal(other.Time) }
func (tp TimePoint) After(other TimePoint) bool         { return tp.Time.After(other.Time) }
func (tp TimePoint) BeforeOrEqual(other TimePoint) bool { return !tp.After(other) }
func (tp TimePoint) AfterOrEqual(other TimePoint) bool  { return !tp.Before(other) }

// Arithmetic
func (tp TimePoint) AddDays(n int) TimePoint { return TimePoint{Time: tp.Time.AddDate(0, 0, n)} }

// Properties
func (tp TimePoint) Year() int             { return tp.Time.Year() }
func (tp TimePoint) Month() time.Month     { return tp.Time.Month() }
func (tp TimePoint) Day() int              { return tp.Time.Day() }
func (tp TimePoint) Weekday() time.Weekday { return tp.Time.Weekday() }
func (tp TimePoint) IsZero() bool          { return tp.Time.IsZero() }

func (tp TimePoint) IsWeekend() bool {
	wd := tp.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// String returns the ISO form, used in logs and JSON.
func (tp TimePoint) String() string {
	return tp.Time.Format(LayoutISODate)
}

// =============================================================================
// TEXT FORMATS
// =============================================================================

const (
	// LayoutShortDate accepts one or two digit month and day and a two digit year ("7/2/20", "07/02/20").
	LayoutShortDate = "1/2/06"

	// LayoutAgreementDate is the zero-padded form printed on agreements ("07/02/20").
	LayoutAgreementDate = "01/02/06"

	LayoutISODate = "2006-01-02"
)

// ShortYearBase is the first year a two digit year can denote. Years 00-99
// map to 2000-2099; Go's own 69/68 pivot is not used.
const ShortYearBase = 2000

// ParseShortDate parses a checkout date written as M/d/yy.
func ParseShortDate(s string) (TimePoint, error) {
	t, err := time.Parse(LayoutShortDate, s)
	if err != nil {
		return TimePoint{}, &DateParseError{Input: s, Layout: "M/d/yy", Err: err}
	}
	year := ShortYearBase + t.Year()%100
	return NewTimePoint(year, t.Month(), t.Day()), nil
}

// FormatShortDate renders a date as MM/dd/yy.
func (tp TimePoint) FormatShortDate() string {
	return tp.Time.Format(LayoutAgreementDate)
}

// =============================================================================
// TIME UTILITIES
// =============================================================================

const secondsPerDay = 24 * 60 * 60

// DaysBetween returns the number of calendar days from one date to another,
// negative when to is before from. Computed from Unix seconds so long
// spans do not saturate the way time.Duration does.
func DaysBetween(from, to TimePoint) int {
	return int((to.Time.Unix() - from.Time.Unix()) / secondsPerDay)
}
