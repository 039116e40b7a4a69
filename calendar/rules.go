/*
Package calendar decides what kind of day a date is for billing.

PURPOSE:
  Rental charges depend on whether a day is an ordinary weekday, a weekend
  day, or an observed holiday. This package answers that for any date with
  pure functions: no state, no configuration, no errors.

HOLIDAYS:
  Exactly two U.S. holidays are recognised:
    Labor Day:        first Monday in September
    Independence Day: July 4, observed on Friday July 3 when the 4th is a
                      Saturday and on Monday July 5 when it is a Sunday

  Only the observed date counts. When July 4 falls on a weekend the 4th
  itself is just a weekend day.

USAGE:
  d := generic.NewTimePoint(2015, time.September, 7)
  calendar.IsLaborDay(d)  // true
  calendar.Classify(d)    // calendar.DayHoliday

SEE ALSO:
  - rental/checkout.go: counts chargeable days using Classify
  - generic/time.go: TimePoint
*/
package calendar

import (
	"time"

	"github.com/warp/rental-engine/generic"
)

// =============================================================================
// DAY KINDS
// =============================================================================

// DayKind is the billing classification of a single date.
type DayKind string

const (
	DayWeekday DayKind = "weekday"
	DayWeekend DayKind = "weekend"
	DayHoliday DayKind = "holiday"
)

// Classify returns the kind of day d is. Observed holidays never fall on a
// weekend, so the two cases do not overlap.
func Classify(d generic.TimePoint) DayKind {
	switch {
	case IsWeekend(d):
		return DayWeekend
	case IsHoliday(d):
		return DayHoliday
	default:
		return DayWeekday
	}
}

// =============================================================================
// PREDICATES
// =============================================================================

// IsWeekend reports whether d is a Saturday or Sunday.
func IsWeekend(d generic.TimePoint) bool {
	return d.IsWeekend()
}

// IsHoliday reports whether d is Labor Day or the observed Independence Day.
func IsHoliday(d generic.TimePoint) bool {
	return IsLaborDay(d) || IsObservedIndependenceDay(d)
}

func IsLaborDay(d generic.TimePoint) bool {
	return LaborDay(d.Year()).Equal(d)
}

func IsObservedIndependenceDay(d generic.TimePoint) bool {
	return ObservedIndependenceDay(d.Year()).Equal(d)
}

// =============================================================================
// HOLIDAY DATES
// =============================================================================

const (
	NameLaborDay        = "Labor Day"
	NameIndependenceDay = "Independence Day"
)

// Holiday is a named holiday on its observed date.
type Holiday struct {
	Name     string
	Date     generic.TimePoint // observed date
	Nominal  generic.TimePoint // date the holiday falls on before weekend adjustment
	Observed bool              // true when Date differs from Nominal
}

// LaborDay returns the first Monday in September of year.
func LaborDay(year int) generic.TimePoint {
	d := generic.NewTimePoint(year, time.September, 1)
	for d.Weekday() != time.Monday {
		d = d.AddDays(1)
	}
	return d
}

// ObservedIndependenceDay returns the date July 4 is observed in year.
func ObservedIndependenceDay(year int) generic.TimePoint {
	d := generic.NewTimePoint(year, time.July, 4)
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDays(-1)
	case time.Sunday:
		return d.AddDays(1)
	default:
		return d
	}
}

// Holidays returns the holidays observed in year, ordered by date.
func Holidays(year int) []Holiday {
	independence := generic.NewTimePoint(year, time.July, 4)
	labor := LaborDay(year)
	observed := ObservedIndependenceDay(year)

	// July always precedes September.
	return []Holiday{
		{Name: NameIndependenceDay, Date: observed, Nominal: independence, Observed: !observed.Equal(independence)},
		{Name: NameLaborDay, Date: labor, Nominal: labor},
	}
}

// HolidaysIn returns the holidays observed within p, ordered by date.
func HolidaysIn(p generic.Period) []Holiday {
	var result []Holiday
	if p.IsEmpty() {
		return result
	}
	for year := p.Start.Year(); year <= p.End.Year(); year++ {
		for _, h := range Holidays(year) {
			if p.Contains(h.Date) {
				result = append(result, h)
			}
		}
	}
	return result
}
