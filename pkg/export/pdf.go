package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"smart-summary-be/pkg/markdown"
	"smart-summary-be/pkg/render"
)

const (
	pdfPageWidth  = 190.0
	pdfLineHeight = 6.0
)

// PDF renders the document as an A4 portrait PDF.
func PDF(doc Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if doc.Title != "" {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.MultiCell(pdfPageWidth, 9, tr(doc.Title), "", "L", false)
		pdf.Ln(3)
	}

	for _, block := range markdown.Blocks(doc.Summary) {
		switch block.Kind {
		case markdown.KindHeading:
			size := 15.0 - float64(block.Level)
			if size < 11 {
				size = 11
			}
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", size)
			pdf.MultiCell(pdfPageWidth, 7, tr(block.Text), "", "L", false)
		case markdown.KindBullet:
			indent := float64(block.Level) * 6
			pdf.SetFont("Helvetica", "", 11)
			pdf.SetX(pdf.GetX() + indent)
			pdf.MultiCell(pdfPageWidth-indent, pdfLineHeight, tr("- "+block.Text), "", "L", false)
		default:
			pdf.SetFont("Helvetica", "", 11)
			pdf.MultiCell(pdfPageWidth, pdfLineHeight, tr(block.Text), "", "L", false)
			pdf.Ln(2)
		}
	}

	for _, table := range doc.Tables {
		writePDFTable(pdf, tr, table)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf render: %w", err)
	}
	return buf.Bytes(), nil
}

func writePDFTable(pdf *fpdf.Fpdf, tr func(string) string, table render.Table) {
	if len(table.Columns) == 0 {
		return
	}
	colWidth := pdfPageWidth / float64(len(table.Columns))

	pdf.Ln(5)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.MultiCell(pdfPageWidth, 7, tr(table.Title), "", "L", false)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(235, 235, 235)
	for _, col := range table.Columns {
		pdf.CellFormat(colWidth, 7, tr(col), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range table.Rows {
		for i := 0; i < len(table.Columns); i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pdf.CellFormat(colWidth, 6, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
