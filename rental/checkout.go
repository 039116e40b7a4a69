/*
checkout.go - Builds a rental agreement from a checkout request

PURPOSE:
  Checkout is the single entry point of the pricing engine. It validates
  the request, resolves the tool, works out which days of the rental are
  billable, and derives the charges.

PIPELINE:
  1. Validate rental days (1-MaxRentalDays) and discount percent (0-100)
  2. Look up the tool code in the catalog
  3. Parse the checkout date (M/d/yy, years 2000-2099)
  4. Due date = checkout date + rental days
  5. Count chargeable days in (checkout date, due date]
  6. Pre-discount charge = round(daily charge * charge days)
     Discount amount     = round(pre-discount charge * percent / 100)
     Final charge        = round(pre-discount charge - discount amount)

  Rounding is to cents, half away from zero. The discount is computed from
  the already-rounded pre-discount charge.

CHARGEABLE DAYS:
  The checkout day is never charged; the due date is. A day is charged when:
  - it is a weekend day and the category charges weekends, or
  - it is an observed holiday and the category charges holidays, or
  - it is an ordinary weekday.

FAILURES:
  Any error aborts the checkout before an agreement exists. Validation of
  days and discount happens before the catalog lookup.

CONCURRENCY:
  Checkout reads only immutable package tables and returns a fresh value,
  so it is safe to call from any number of goroutines.

SEE ALSO:
  - calendar/rules.go: weekend and holiday classification
  - agreement.go: the resulting RentalAgreement and its rendering
*/
package rental

import (
	"github.com/warp/rental-engine/calendar"
	"github.com/warp/rental-engine/generic"
)

// =============================================================================
// REQUEST
// =============================================================================

// Request holds the raw inputs of a checkout.
type Request struct {
	ToolCode        string
	RentalDays      int
	DiscountPercent int
	CheckoutDate    string // M/d/yy
}

const (
	MinRentalDays      = 1
	MaxRentalDays      = 3650 // ten years
	MinDiscountPercent = 0
	MaxDiscountPercent = 100
)

// Validate checks the numeric inputs. It does not touch the catalog or the date.
func (r Request) Validate() error {
	if r.RentalDays < MinRentalDays {
		return ErrInvalidDuration
	}
	if r.RentalDays > MaxRentalDays {
		return &RentalTooLongError{Days: r.RentalDays}
	}
	if r.DiscountPercent < MinDiscountPercent || r.DiscountPercent > MaxDiscountPercent {
		return ErrInvalidDiscount
	}
	return nil
}

// =============================================================================
// CHECKOUT
// =============================================================================

// Checkout rents the tool identified by toolCode for rentalDays days starting
// on checkoutDate and returns the resulting agreement.
func Checkout(toolCode string, rentalDays, discountPercent int, checkoutDate string) (RentalAgreement, error) {
	return CheckoutRequest(Request{
		ToolCode:        toolCode,
		RentalDays:      rentalDays,
		DiscountPercent: discountPercent,
		CheckoutDate:    checkoutDate,
	})
}

// CheckoutRequest is Checkout taking its inputs as a Request.
func CheckoutRequest(req Request) (RentalAgreement, error) {
	if err := req.Validate(); err != nil {
		return RentalAgreement{}, err
	}

	tool, err := LookupTool(req.ToolCode)
	if err != nil {
		return RentalAgreement{}, err
	}

	checkoutDate, err := generic.ParseShortDate(req.CheckoutDate)
	if err != nil {
		return RentalAgreement{}, err
	}

	window := generic.RentalWindow(checkoutDate, req.RentalDays)
	if generic.DaysBetween(checkoutDate, window.End) != req.RentalDays {
		return RentalAgreement{}, &RentalTooLongError{Days: req.RentalDays}
	}
	chargeDays := ChargeableDays(tool.Category, window)
	charges := PriceCharges(tool.Category.DailyCharge, chargeDays, req.DiscountPercent)

	return RentalAgreement{
		Tool:              tool,
		RentalDays:        req.RentalDays,
		CheckoutDate:      checkoutDate,
		DueDate:           window.End,
		DailyCharge:       tool.Category.DailyCharge,
		ChargeDays:        chargeDays,
		PreDiscountCharge: charges.PreDiscount,
		DiscountPercent:   req.DiscountPercent,
		DiscountAmount:    charges.Discount,
		FinalCharge:       charges.Final,
	}, nil
}

// ChargeableDays counts the days of window that category is billed for.
func ChargeableDays(category ToolCategory, window generic.Period) int {
	return window.Count(func(d generic.TimePoint) bool {
		return category.ChargesOn(calendar.Classify(d))
	})
}

// =============================================================================
// CHARGES
// =============================================================================

// Charges is the three-stage money breakdown of a rental.
type Charges struct {
	PreDiscount generic.Money
	Discount    generic.Money
	Final       generic.Money
}

// PriceCharges derives the charges for chargeDays days at dailyCharge with
// discountPercent off. Each stage is rounded to cents before the next uses it.
func PriceCharges(dailyCharge generic.Money, chargeDays, discountPercent int) Charges {
	pre := dailyCharge.MulInt(chargeDays).Round()
	discount := pre.Percent(discountPercent).Round()
	return Charges{
		PreDiscount: pre,
		Discount:    discount,
		Final:       pre.Sub(discount).Round(),
	}
}
