package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatHeader(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"net_income", "Net Income"},
		{"grossMargin", "Gross Margin"},
		{"revenue", "Revenue"},
		{"total_assets_yoy", "Total Assets Yoy"},
		{"CPIAUCSL", "CPIAUCSL"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatHeader(c.in), "input %q", c.in)
	}
}

func TestFormatColumnHeader(t *testing.T) {
	assert.Equal(t, "Cost of Goods Sold", FormatColumnHeader("cogs"))
	assert.Equal(t, "Cost of Goods Sold", FormatColumnHeader("COGS"))
	assert.Equal(t, "Percentage", FormatColumnHeader("percent"))
	assert.Equal(t, "Value", FormatColumnHeader("val"))
	assert.Equal(t, "Operating Margin", FormatColumnHeader("operating_margin"))
}

func TestFormatNumberGrouping(t *testing.T) {
	assert.Equal(t, "1,234,567.89", FormatNumber(1234567.891, "revenue"))
	assert.Equal(t, "1,000", FormatNumber(json.Number("1000"), "amount"))
	assert.Equal(t, "-12,500.5", FormatNumber(-12500.5, "net_income"))
	assert.Equal(t, "0.12", FormatNumber(0.1234, "percent"))
	assert.Equal(t, "999", FormatNumber(999, "amount"))
}

func TestFormatNumberYears(t *testing.T) {
	// integer in the calendar range is a year even without a hint
	assert.Equal(t, "2023", FormatNumber(2023, "period"))
	// the column name forces year treatment outside the range
	assert.Equal(t, "12023", FormatNumber(12023, "fiscal_year"))
	// non-integers in the range are still plain numbers
	assert.Equal(t, "2,023.5", FormatNumber(2023.5, "amount"))
	// integers outside the range get separators
	assert.Equal(t, "1,899", FormatNumber(1899, "amount"))
	assert.Equal(t, "2,101", FormatNumber(2101, "amount"))
}

func TestFormatNumberPassthrough(t *testing.T) {
	assert.Equal(t, "N/A", FormatNumber("N/A", "revenue"))
	assert.Equal(t, "steady", FormatNumber("steady", "trend"))
	assert.Equal(t, "", FormatNumber(nil, "revenue"))
	assert.Equal(t, "true", FormatNumber(true, "flag"))
}
