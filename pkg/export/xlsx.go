package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSX renders the document as a workbook: a Summary sheet with the
// plain narrative, then one sheet per table.
func XLSX(doc Document) ([]byte, error) {
	f := excelize.NewFile()
	const summarySheet = "Summary"
	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return nil, err
	}

	row := 1
	write := func(sheet string, col, r int, v interface{}) {
		cell, _ := excelize.CoordinatesToCellName(col, r)
		_ = f.SetCellValue(sheet, cell, v)
	}

	if doc.Title != "" {
		write(summarySheet, 1, row, doc.Title)
		row += 2
	}
	for _, line := range strings.Split(PlainText(Document{Summary: doc.Summary}), "\n") {
		write(summarySheet, 1, row, line)
		row++
	}
	_ = f.SetColWidth(summarySheet, "A", "A", 110)

	used := map[string]bool{summarySheet: true}
	for _, table := range doc.Tables {
		sheet := sheetName(table.Title, used)
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
		for i, col := range table.Columns {
			write(sheet, i+1, 1, col)
		}
		for r, cells := range table.Rows {
			for c, cell := range cells {
				write(sheet, c+1, r+2, cell)
			}
		}
		last, _ := excelize.ColumnNumberToName(len(table.Columns))
		_ = f.SetColWidth(sheet, "A", last, 18)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

var sheetNameSanitizer = strings.NewReplacer(
	":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", "(", "]", ")",
)

// sheetName fits a table title into the 31 character workbook limit
// and keeps it unique within the file.
func sheetName(title string, used map[string]bool) string {
	name := strings.TrimSpace(sheetNameSanitizer.Replace(title))
	if name == "" {
		name = "Table"
	}
	// Truncate by runes, a byte slice can split a multi-byte character
	if runes := []rune(name); len(runes) > 28 {
		name = strings.TrimSpace(string(runes[:28]))
	}
	candidate := name
	for i := 2; used[candidate]; i++ {
		candidate = fmt.Sprintf("%s %d", name, i)
	}
	used[candidate] = true
	return candidate
}
