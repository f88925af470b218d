package render

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// columnHeaderMap maps well-known financial column keys to their
// display names. Anything else falls back to FormatHeader.
var columnHeaderMap = map[string]string{
	"year":               "Year",
	"val":                "Value",
	"date":               "Date",
	"value":              "Value",
	"amount":             "Amount",
	"percent":            "Percentage",
	"revenue":            "Revenue",
	"income":             "Income",
	"expenses":           "Expenses",
	"profit":             "Profit",
	"loss":               "Loss",
	"net_income":         "Net Income",
	"gross_margin":       "Gross Margin",
	"cash_balance":       "Cash Balance",
	"total_assets":       "Total Assets",
	"total_liabilities":  "Total Liabilities",
	"operating_expenses": "Operating Expenses",
	"cogs":               "Cost of Goods Sold",
}

// FormatHeader turns a machine-style key into a human title:
// underscores become spaces, camelCase boundaries are split, and the
// first letter of every word is capitalized.
func FormatHeader(header string) string {
	spaced := strings.ReplaceAll(header, "_", " ")

	var b strings.Builder
	runes := []rune(spaced)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}

	out := []rune(b.String())
	prevIsWord := false
	for i, r := range out {
		isWord := unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
		if isWord && !prevIsWord {
			out[i] = unicode.ToUpper(r)
		}
		prevIsWord = isWord
	}
	return string(out)
}

// FormatColumnHeader resolves a column key case-insensitively against
// the synonym table before falling back to FormatHeader.
func FormatColumnHeader(header string) string {
	if mapped, ok := columnHeaderMap[strings.ToLower(header)]; ok {
		return mapped
	}
	return FormatHeader(header)
}

// FormatNumber renders a cell value. Numeric values get US-style
// thousands separators with at most two decimal places, unless the
// value is a bare calendar year: either the column name says so, or
// the value is an integer between 1900 and 2100. Years never get
// separators. Non-numeric values pass through unchanged.
func FormatNumber(value interface{}, columnName string) string {
	f, ok := asFloat(value)
	if !ok {
		switch v := value.(type) {
		case nil:
			return ""
		case string:
			return v
		default:
			return fmt.Sprint(v)
		}
	}

	isInteger := f == math.Trunc(f) && !math.IsInf(f, 0)
	isYear := strings.Contains(strings.ToLower(columnName), "year") ||
		(isInteger && f >= 1900 && f <= 2100)

	if isYear {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return groupThousands(f)
}

func asFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// groupThousands mimics en-US locale formatting with
// minimumFractionDigits 0 and maximumFractionDigits 2.
func groupThousands(f float64) string {
	rounded := math.Round(f*100) / 100
	s := strconv.FormatFloat(rounded, 'f', -1, 64)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot+1:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	if lead > len(intPart) {
		lead = len(intPart)
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	if fracPart != "" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
