package rental

import (
	"fmt"
	"io"
	"strings"

	"github.com/warp/rental-engine/generic"
)

// =============================================================================
// RENTAL AGREEMENT
// =============================================================================

// RentalAgreement is the outcome of a checkout. DailyCharge is copied from
// the tool category when the agreement is built.
type RentalAgreement struct {
	Tool              Tool
	RentalDays        int
	CheckoutDate      generic.TimePoint
	DueDate           generic.TimePoint
	DailyCharge       generic.Money
	ChargeDays        int
	PreDiscountCharge generic.Money
	DiscountPercent   int
	DiscountAmount    generic.Money
	FinalCharge       generic.Money
}

// Lines returns the agreement as "Label: value" lines in print order.
func (a RentalAgreement) Lines() []string {
	return []string{
		"Tool code: " + a.Tool.Code,
		"Tool type: " + string(a.Tool.Category.Name),
		"Tool brand: " + a.Tool.Brand,
		fmt.Sprintf("Rental days: %d", a.RentalDays),
		"Check out date: " + a.CheckoutDate.FormatShortDate(),
		"Due date: " + a.DueDate.FormatShortDate(),
		"Daily rental charge: " + a.DailyCharge.String(),
		fmt.Sprintf("Charge days: %d", a.ChargeDays),
		"Pre-discount charge: " + a.PreDiscountCharge.String(),
		fmt.Sprintf("Discount percent: %d%%", a.DiscountPercent),
		"Discount amount: " + a.DiscountAmount.String(),
		"Final charge: " + a.FinalCharge.String(),
	}
}

// String renders the agreement one field per line, without a trailing newline.
func (a RentalAgreement) String() string {
	return strings.Join(a.Lines(), "\n")
}

// Print writes the rendered agreement followed by a newline to w.
func (a RentalAgreement) Print(w io.Writer) error {
	_, err := io.WriteString(w, a.String()+"\n")
	return err
}
