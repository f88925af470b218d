package render

import (
	"smart-summary-be/pkg/trends"
)

// Table is a fully formatted flat table ready for any output surface
// (HTTP JSON, XLSX sheet, PDF, clipboard text).
type Table struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// RenderFlatTable formats rows into a table. The column set is exactly
// the key set of the first row, in that row's key order. Rows whose
// values are all placeholders are dropped; if nothing survives, the
// table is omitted entirely.
func RenderFlatTable(rows []trends.Row, title string) *Table {
	if len(rows) == 0 {
		return nil
	}

	columns := rows[0].Keys
	if len(columns) == 0 {
		return nil
	}

	var kept []trends.Row
	for _, row := range rows {
		if hasRealValue(row) {
			kept = append(kept, row)
		}
	}
	if len(kept) == 0 {
		return nil
	}

	t := &Table{
		Title:   FormatHeader(title),
		Columns: make([]string, len(columns)),
	}
	for i, col := range columns {
		t.Columns[i] = FormatColumnHeader(col)
	}

	for _, row := range kept {
		cells := make([]string, len(columns))
		for i, col := range columns {
			v, ok := row.Values[col]
			if !ok {
				cells[i] = ""
				continue
			}
			cells[i] = FormatNumber(v, col)
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

func hasRealValue(row trends.Row) bool {
	for _, key := range row.Keys {
		v := row.Values[key]
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && s == "N/A" {
			continue
		}
		return true
	}
	return false
}
