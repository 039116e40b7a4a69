package rental_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/rental-engine/calendar"
	"github.com/warp/rental-engine/rental"
)

func TestLookupTool_Catalog(t *testing.T) {
	tests := []struct {
		code     string
		category rental.Category
		brand    string
	}{
		{"LADW", rental.CategoryLadder, "Werner"},
		{"CHNS", rental.CategoryChainsaw, "Stihl"},
		{"JAKD", rental.CategoryJackhammer, "DeWalt"},
		{"JAKR", rental.CategoryJackhammer, "Ridgid"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			tool, err := rental.LookupTool(tt.code)
			require.NoError(t, err)

			assert.Equal(t, tt.code, tool.Code)
			assert.Equal(t, tt.category, tool.Category.Name)
			assert.Equal(t, tt.brand, tool.Brand)
		})
	}
}

func TestLookupTool_CaseSensitive(t *testing.T) {
	_, err := rental.LookupTool("ladw")
	assert.ErrorIs(t, err, rental.ErrUnknownTool)
}

func TestTools_SortedByCode(t *testing.T) {
	tools := rental.Tools()

	require.Len(t, tools, 4)
	codes := make([]string, len(tools))
	for i, tool := range tools {
		codes[i] = tool.Code
	}
	assert.Equal(t, []string{"CHNS", "JAKD", "JAKR", "LADW"}, codes)
}

func TestCategories_Definitions(t *testing.T) {
	tests := []struct {
		name    rental.Category
		daily   string
		weekday bool
		weekend bool
		holiday bool
	}{
		{rental.CategoryChainsaw, "1.49", true, false, true},
		{rental.CategoryJackhammer, "2.99", true, false, false},
		{rental.CategoryLadder, "1.99", true, true, false},
	}

	categories := rental.Categories()
	require.Len(t, categories, len(tests))

	for i, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			c := categories[i]
			assert.Equal(t, tt.name, c.Name)
			assert.Equal(t, tt.daily, c.DailyCharge.Fixed())
			assert.Equal(t, tt.weekday, c.WeekdayCharge)
			assert.Equal(t, tt.weekend, c.WeekendCharge)
			assert.Equal(t, tt.holiday, c.HolidayCharge)
		})
	}
}

func TestLookupCategory_Unknown(t *testing.T) {
	_, ok := rental.LookupCategory("Wheelbarrow")
	assert.False(t, ok)
}

func TestToolCategory_ChargesOn(t *testing.T) {
	chainsaw, _ := rental.LookupCategory(rental.CategoryChainsaw)
	assert.True(t, chainsaw.ChargesOn(calendar.DayWeekday))
	assert.False(t, chainsaw.ChargesOn(calendar.DayWeekend))
	assert.True(t, chainsaw.ChargesOn(calendar.DayHoliday))

	ladder, _ := rental.LookupCategory(rental.CategoryLadder)
	assert.True(t, ladder.ChargesOn(calendar.DayWeekend))
	assert.False(t, ladder.ChargesOn(calendar.DayHoliday))
}

func TestToolCategory_ChargesOn_WeekdayFlagIgnored(t *testing.T) {
	// Ordinary weekdays are billed whatever WeekdayCharge says.
	custom := rental.ToolCategory{Name: "Custom", WeekdayCharge: false}
	assert.True(t, custom.ChargesOn(calendar.DayWeekday))
}
