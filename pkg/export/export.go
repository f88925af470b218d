// Package export turns a rendered report into downloadable artifacts:
// PDF, DOCX, XLSX, and clipboard text in rich or plain form.
package export

import (
	"html"
	"strings"

	"smart-summary-be/pkg/markdown"
	"smart-summary-be/pkg/render"
)

// Document is the exporter input: the report title, the narrative
// summary in markdown, and every rendered table in display order.
type Document struct {
	Title   string
	Summary string
	Tables  []render.Table
}

// PlainText renders the document for plain clipboard mode. Tables are
// emitted as tab separated lines under their title.
func PlainText(doc Document) string {
	var b strings.Builder
	if doc.Title != "" {
		b.WriteString(doc.Title)
		b.WriteString("\n\n")
	}
	b.WriteString(markdown.Plain(doc.Summary))
	for _, table := range doc.Tables {
		b.WriteString("\n\n")
		b.WriteString(table.Title)
		b.WriteByte('\n')
		b.WriteString(strings.Join(table.Columns, "\t"))
		for _, row := range table.Rows {
			b.WriteByte('\n')
			b.WriteString(strings.Join(row, "\t"))
		}
	}
	return b.String()
}

// HTML renders the document for rich clipboard mode and email bodies.
func HTML(doc Document) (string, error) {
	body, err := markdown.RichHTML(doc.Summary)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if doc.Title != "" {
		b.WriteString("<h1>")
		b.WriteString(html.EscapeString(doc.Title))
		b.WriteString("</h1>\n")
	}
	b.WriteString(body)
	for _, table := range doc.Tables {
		b.WriteString("<h3>")
		b.WriteString(html.EscapeString(table.Title))
		b.WriteString("</h3>\n<table border=\"1\" cellspacing=\"0\" cellpadding=\"4\">\n<tr>")
		for _, col := range table.Columns {
			b.WriteString("<th>")
			b.WriteString(html.EscapeString(col))
			b.WriteString("</th>")
		}
		b.WriteString("</tr>\n")
		for _, row := range table.Rows {
			b.WriteString("<tr>")
			for _, cell := range row {
				b.WriteString("<td>")
				b.WriteString(html.EscapeString(cell))
				b.WriteString("</td>")
			}
			b.WriteString("</tr>\n")
		}
		b.WriteString("</table>\n")
	}
	return b.String(), nil
}
