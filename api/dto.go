/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the rental package from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

MONEY AND DATES:
  Money is sent as a fixed two-decimal string ("3.58"), never a float.
  Agreement dates use the printed MM/dd/yy form; holiday dates are ISO.

VALIDATION:
  Struct tags check presence and cap rental_days at rental.MaxRentalDays.
  The remaining range checks belong to rental.Checkout so each violation
  keeps its own error.

SEE ALSO:
  - handlers.go: Uses these types
  - rental/agreement.go: RentalAgreement
*/
package api

import (
	"github.com/warp/rental-engine/calendar"
	"github.com/warp/rental-engine/rental"
)

// =============================================================================
// CHECKOUT
// =============================================================================

// CheckoutRequest is the request to check out a tool.
type CheckoutRequest struct {
	ToolCode        string `json:"tool_code" validate:"required"`
	RentalDays      *int   `json:"rental_days" validate:"required,max=3650"` // rental.MaxRentalDays
	DiscountPercent *int   `json:"discount_percent,omitempty"` // nil = no discount
	CheckoutDate    string `json:"checkout_date" validate:"required"`
}

// ToRental converts the request to engine inputs. Call after validation.
func (r CheckoutRequest) ToRental() rental.Request {
	discount := 0
	if r.DiscountPercent != nil {
		discount = *r.DiscountPercent
	}
	return rental.Request{
		ToolCode:        r.ToolCode,
		RentalDays:      *r.RentalDays,
		DiscountPercent: discount,
		CheckoutDate:    r.CheckoutDate,
	}
}

// AgreementDTO represents a rental agreement in API responses.
type AgreementDTO struct {
	AgreementID       string `json:"agreement_id"`
	ToolCode          string `json:"tool_code"`
	ToolType          string `json:"tool_type"`
	ToolBrand         string `json:"tool_brand"`
	RentalDays        int    `json:"rental_days"`
	CheckoutDate      string `json:"checkout_date"`
	DueDate           string `json:"due_date"`
	DailyRentalCharge string `json:"daily_rental_charge"`
	ChargeDays        int    `json:"charge_days"`
	PreDiscountCharge string `json:"pre_discount_charge"`
	DiscountPercent   int    `json:"discount_percent"`
	DiscountAmount    string `json:"discount_amount"`
	FinalCharge       string `json:"final_charge"`
	Rendered          string `json:"rendered"`
}

func toAgreementDTO(id string, a rental.RentalAgreement) AgreementDTO {
	return AgreementDTO{
		AgreementID:       id,
		ToolCode:          a.Tool.Code,
		ToolType:          string(a.Tool.Category.Name),
		ToolBrand:         a.Tool.Brand,
		RentalDays:        a.RentalDays,
		CheckoutDate:      a.CheckoutDate.FormatShortDate(),
		DueDate:           a.DueDate.FormatShortDate(),
		DailyRentalCharge: a.DailyCharge.Fixed(),
		ChargeDays:        a.ChargeDays,
		PreDiscountCharge: a.PreDiscountCharge.Fixed(),
		DiscountPercent:   a.DiscountPercent,
		DiscountAmount:    a.DiscountAmount.Fixed(),
		FinalCharge:       a.FinalCharge.Fixed(),
		Rendered:          a.String(),
	}
}

// =============================================================================
// CATALOG
// =============================================================================

// CategoryDTO represents a tool category.
type CategoryDTO struct {
	Name          string `json:"name"`
	DailyCharge   string `json:"daily_charge"`
	WeekdayCharge bool   `json:"weekday_charge"`
	WeekendCharge bool   `json:"weekend_charge"`
	HolidayCharge bool   `json:"holiday_charge"`
}

// ToolDTO represents a catalog entry.
type ToolDTO struct {
	Code     string      `json:"code"`
	Brand    string      `json:"brand"`
	Category CategoryDTO `json:"category"`
}

func toCategoryDTO(c rental.ToolCategory) CategoryDTO {
	return CategoryDTO{
		Name:          string(c.Name),
		DailyCharge:   c.DailyCharge.Fixed(),
		WeekdayCharge: c.WeekdayCharge,
		WeekendCharge: c.WeekendCharge,
		HolidayCharge: c.HolidayCharge,
	}
}

func toToolDTO(t rental.Tool) ToolDTO {
	return ToolDTO{Code: t.Code, Brand: t.Brand, Category: toCategoryDTO(t.Category)}
}

// =============================================================================
// HOLIDAYS
// =============================================================================

// HolidayDTO represents an observed holiday.
type HolidayDTO struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	NominalDate string `json:"nominal_date"`
	Observed    bool   `json:"observed"`
}

func toHolidayDTO(h calendar.Holiday) HolidayDTO {
	return HolidayDTO{
		Name:        h.Name,
		Date:        h.Date.String(),
		NominalDate: h.Nominal.String(),
		Observed:    h.Observed,
	}
}

// =============================================================================
// ERRORS
// =============================================================================

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
