/*
Package generic provides the domain-neutral building blocks of the rental engine.

PURPOSE:
  Rental pricing needs two primitives that are easy to get subtly wrong:
  calendar dates with no time-of-day, and money with exact decimal cents.
  Both live here so the calendar and rental packages never touch
  time.Time arithmetic or floating point directly.

KEY CONCEPTS IN THIS FILE (types.go):
  - Money: an exact decimal amount in the single billing currency

OTHER FILES:
  - time.go:   TimePoint, short-date parsing and formatting
  - period.go: Period and the rental window
  - errors.go: sentinel and structured errors

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal to avoid floating-point errors
  2. Rounding: Every stored charge is rounded to cents half away from zero
     (0.125 -> 0.13), matching how the agreement is printed
  3. Immutability: Money and TimePoint are values; every operation returns a new one

USAGE:
  daily := generic.MustParseMoney("1.99")
  pre := daily.MulInt(3).Round()          // $5.97
  discount := pre.Percent(10).Round()     // $0.60
  final := pre.Sub(discount).Round()      // $5.37

SEE ALSO:
  - rental/checkout.go: the charge pipeline built on Money
  - calendar/rules.go: weekend and holiday predicates built on TimePoint
*/
package generic

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Exact decimal amount in the billing currency
// =============================================================================

// CurrencySymbol prefixes every rendered amount. There is one currency.
const CurrencySymbol = "$"

// CentPlaces is the number of fraction digits charges are rounded to.
const CentPlaces = 2

type Money struct {
	Value decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

func NewMoney(value decimal.Decimal) Money { return Money{Value: value} }

func NewMoneyFromCents(cents int64) Money {
	return Money{Value: decimal.New(cents, -CentPlaces)}
}

// MustParseMoney reads a plain decimal literal such as "2.99". It panics on
// bad input and is meant for package-level tables.
func MustParseMoney(s string) Money {
	return Money{Value: decimal.RequireFromString(s)}
}

func ZeroMoney() Money { return Money{Value: decimal.Zero} }

func (m Money) Add(o Money) Money     { return Money{Value: m.Value.Add(o.Value)} }
func (m Money) Sub(o Money) Money     { return Money{Value: m.Value.Sub(o.Value)} }
func (m Money) MulInt(n int) Money    { return Money{Value: m.Value.Mul(decimal.NewFromInt(int64(n)))} }
func (m Money) IsZero() bool          { return m.Value.IsZero() }
func (m Money) IsNegative() bool      { return m.Value.IsNegative() }
func (m Money) Equal(o Money) bool    { return m.Value.Equal(o.Value) }
func (m Money) LessThan(o Money) bool { return m.Value.LessThan(o.Value) }

// Percent returns pct percent of m, unrounded.
func (m Money) Percent(pct int) Money {
	return Money{Value: m.Value.Mul(decimal.NewFromInt(int64(pct))).Div(hundred)}
}

// Round rounds to cents, half away from zero.
func (m Money) Round() Money {
	return Money{Value: m.Value.Round(CentPlaces)}
}

// Fixed returns the amount with exactly two fraction digits and no symbol ("3.50").
func (m Money) Fixed() string {
	return m.Value.StringFixed(CentPlaces)
}

// String renders the amount as currency: "$3.50". No grouping separators.
func (m Money) String() string {
	if m.IsNegative() {
		return "-" + CurrencySymbol + m.Value.Neg().StringFixed(CentPlaces)
	}
	return CurrencySymbol + m.Fixed()
}
