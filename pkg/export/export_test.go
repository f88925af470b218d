package export

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"smart-summary-be/pkg/render"
)

func sampleDocument() Document {
	return Document{
		Title:   "Smart Summary Report",
		Summary: "## Outlook\n\nRevenue is **up**.\n\n- cash position stable",
		Tables: []render.Table{
			{
				Title:   "Income Statement",
				Columns: []string{"Year", "Revenue"},
				Rows:    [][]string{{"2022", "1,500,000"}, {"2023", "1,750,000"}},
			},
			{
				Title:   "Economic Indicators / GDP",
				Columns: []string{"Date", "GDP"},
				Rows:    [][]string{{"2023-01-01", "26,854.6"}},
			},
		},
	}
}

func TestPlainText(t *testing.T) {
	out := PlainText(sampleDocument())
	assert.True(t, strings.HasPrefix(out, "Smart Summary Report\n\nOutlook:"))
	assert.Contains(t, out, "\t- cash position stable")
	assert.Contains(t, out, "Income Statement\nYear\tRevenue\n2022\t1,500,000")
}

func TestHTML(t *testing.T) {
	out, err := HTML(sampleDocument())
	require.NoError(t, err)
	assert.Contains(t, out, "<h1>Smart Summary Report</h1>")
	assert.Contains(t, out, "<strong>up</strong>")
	assert.Contains(t, out, "<th>Revenue</th>")
	assert.Contains(t, out, "<td>1,750,000</td>")
}

func TestPDF(t *testing.T) {
	out, err := PDF(sampleDocument())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestDOCX(t *testing.T) {
	out, err := DOCX(sampleDocument())
	require.NoError(t, err)

	r, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)

	var names []string
	var document string
	for _, f := range r.File {
		names = append(names, f.Name)
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			require.NoError(t, err)
			raw, err := io.ReadAll(rc)
			require.NoError(t, err)
			require.NoError(t, rc.Close())
			document = string(raw)
		}
	}
	assert.Contains(t, names, "[Content_Types].xml")
	assert.Contains(t, names, "_rels/.rels")
	require.NotEmpty(t, document)
	assert.Contains(t, document, "Smart Summary Report")
	assert.Contains(t, document, "Revenue is up.")
	assert.Contains(t, document, "<w:tbl>")
}

func TestXLSX(t *testing.T) {
	out, err := XLSX(sampleDocument())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Summary")
	assert.Contains(t, sheets, "Income Statement")

	v, err := f.GetCellValue("Income Statement", "B3")
	require.NoError(t, err)
	assert.Equal(t, "1,750,000", v)
}

func TestSheetNameMultibyteTruncation(t *testing.T) {
	used := map[string]bool{}
	name := sheetName("Dépenses d'exploitation consolidées par département", used)
	assert.True(t, utf8.ValidString(name))
	assert.LessOrEqual(t, len([]rune(name)), 31)

	// A truncated multibyte title must still make a sheet excelize accepts
	doc := sampleDocument()
	doc.Tables[0].Title = "Répartition des coûts variables année après année"
	out, err := XLSX(doc)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()
	assert.Len(t, f.GetSheetList(), 3)
}

func TestSheetNameDedup(t *testing.T) {
	used := map[string]bool{}
	first := sheetName("Revenue [total] / quarterly history table", used)
	second := sheetName("Revenue [total] / quarterly history table", used)
	assert.NotEqual(t, first, second)
	assert.LessOrEqual(t, len(first), 31)
	assert.LessOrEqual(t, len(second), 31)
}
