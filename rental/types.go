// Package rental implements tool rental checkout: the tool catalog, the
// chargeable-day rules per tool category, and the rental agreement.
package rental

import (
	"sort"

	"github.com/warp/rental-engine/calendar"
	"github.com/warp/rental-engine/generic"
)

// =============================================================================
// TOOL CATEGORIES
// =============================================================================

// Category names a tool category.
type Category string

const (
	CategoryLadder     Category = "Ladder"
	CategoryChainsaw   Category = "Chainsaw"
	CategoryJackhammer Category = "Jackhammer"
)

// ToolCategory carries the daily rate of a category and the kinds of day it
// is charged on.
type ToolCategory struct {
	Name          Category
	DailyCharge   generic.Money
	WeekdayCharge bool
	WeekendCharge bool
	HolidayCharge bool
}

// ChargesOn reports whether a day of the given kind is billed.
//
// Ordinary weekdays are always billed; WeekdayCharge is carried for display
// but does not exclude weekdays.
func (c ToolCategory) ChargesOn(kind calendar.DayKind) bool {
	switch kind {
	case calendar.DayWeekend:
		return c.WeekendCharge
	case calendar.DayHoliday:
		return c.HolidayCharge
	default:
		return true
	}
}

var categories = map[Category]ToolCategory{
	CategoryLadder: {
		Name:          CategoryLadder,
		DailyCharge:   generic.MustParseMoney("1.99"),
		WeekdayCharge: true,
		WeekendCharge: true,
		HolidayCharge: false,
	},
	CategoryChainsaw: {
		Name:          CategoryChainsaw,
		DailyCharge:   generic.MustParseMoney("1.49"),
		WeekdayCharge: true,
		WeekendCharge: false,
		HolidayCharge: true,
	},
	CategoryJackhammer: {
		Name:          CategoryJackhammer,
		DailyCharge:   generic.MustParseMoney("2.99"),
		WeekdayCharge: true,
		WeekendCharge: false,
		HolidayCharge: false,
	},
}

// LookupCategory returns the category definition for name.
func LookupCategory(name Category) (ToolCategory, bool) {
	c, ok := categories[name]
	return c, ok
}

// Categories returns every category ordered by name.
func Categories() []ToolCategory {
	result := make([]ToolCategory, 0, len(categories))
	for _, c := range categories {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// =============================================================================
// TOOL CATALOG
// =============================================================================

// Tool is a rentable catalog entry.
type Tool struct {
	Code     string
	Category ToolCategory
	Brand    string
}

var catalog = map[string]Tool{
	"LADW": {Code: "LADW", Category: categories[CategoryLadder], Brand: "Werner"},
	"CHNS": {Code: "CHNS", Category: categories[CategoryChainsaw], Brand: "Stihl"},
	"JAKD": {Code: "JAKD", Category: categories[CategoryJackhammer], Brand: "DeWalt"},
	"JAKR": {Code: "JAKR", Category: categories[CategoryJackhammer], Brand: "Ridgid"},
}

// LookupTool returns the catalog entry for code. Codes are case-sensitive.
func LookupTool(code string) (Tool, error) {
	tool, ok := catalog[code]
	if !ok {
		return Tool{}, &UnknownToolError{Code: code}
	}
	return tool, nil
}

// Tools returns the whole catalog ordered by code.
func Tools() []Tool {
	result := make([]Tool, 0, len(catalog))
	for _, t := range catalog {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Code < result[j].Code })
	return result
}
