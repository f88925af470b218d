package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"smart-summary-be/pkg/markdown"
	"smart-summary-be/pkg/render"
)

// DOCX renders the document as a minimal WordprocessingML package:
// just the content types, the package relationships, and the document
// body. That is enough for Word, LibreOffice, and Google Docs.
func DOCX(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxPackageRels},
		{"word/document.xml", buildDocumentXML(doc)},
	}
	for _, part := range parts {
		f, err := w.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("docx part %s: %w", part.name, err)
		}
		if _, err := f.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("docx part %s: %w", part.name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("docx finalize: %w", err)
	}
	return buf.Bytes(), nil
}

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxPackageRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

func buildDocumentXML(doc Document) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	if doc.Title != "" {
		writeParagraph(&b, doc.Title, runProps{bold: true, halfPointSize: 36})
	}

	for _, block := range markdown.Blocks(doc.Summary) {
		switch block.Kind {
		case markdown.KindHeading:
			size := 32 - block.Level*2
			if size < 24 {
				size = 24
			}
			writeParagraph(&b, block.Text, runProps{bold: true, halfPointSize: size})
		case markdown.KindBullet:
			writeParagraph(&b, "- "+block.Text, runProps{indentTwips: block.Level * 360})
		default:
			writeParagraph(&b, block.Text, runProps{})
		}
	}

	for _, table := range doc.Tables {
		writeParagraph(&b, table.Title, runProps{bold: true, halfPointSize: 26})
		writeDocxTable(&b, table)
	}

	b.WriteString(`<w:sectPr/></w:body></w:document>`)
	return b.String()
}

type runProps struct {
	bold          bool
	halfPointSize int
	indentTwips   int
}

func writeParagraph(b *strings.Builder, text string, props runProps) {
	b.WriteString(`<w:p>`)
	if props.indentTwips > 0 {
		fmt.Fprintf(b, `<w:pPr><w:ind w:left="%d"/></w:pPr>`, props.indentTwips)
	}
	writeRun(b, text, props)
	b.WriteString(`</w:p>`)
}

func writeRun(b *strings.Builder, text string, props runProps) {
	b.WriteString(`<w:r>`)
	if props.bold || props.halfPointSize > 0 {
		b.WriteString(`<w:rPr>`)
		if props.bold {
			b.WriteString(`<w:b/>`)
		}
		if props.halfPointSize > 0 {
			fmt.Fprintf(b, `<w:sz w:val="%d"/>`, props.halfPointSize)
		}
		b.WriteString(`</w:rPr>`)
	}
	b.WriteString(`<w:t xml:space="preserve">`)
	b.WriteString(escapeXML(text))
	b.WriteString(`</w:t></w:r>`)
}

func writeDocxTable(b *strings.Builder, table render.Table) {
	b.WriteString(`<w:tbl><w:tblPr><w:tblBorders>` +
		`<w:top w:val="single" w:sz="4"/><w:bottom w:val="single" w:sz="4"/>` +
		`<w:left w:val="single" w:sz="4"/><w:right w:val="single" w:sz="4"/>` +
		`<w:insideH w:val="single" w:sz="4"/><w:insideV w:val="single" w:sz="4"/>` +
		`</w:tblBorders></w:tblPr>`)

	writeDocxRow(b, table.Columns, runProps{bold: true})
	for _, row := range table.Rows {
		cells := row
		if len(cells) < len(table.Columns) {
			padded := make([]string, len(table.Columns))
			copy(padded, cells)
			cells = padded
		}
		writeDocxRow(b, cells, runProps{})
	}
	b.WriteString(`</w:tbl><w:p/>`)
}

func writeDocxRow(b *strings.Builder, cells []string, props runProps) {
	b.WriteString(`<w:tr>`)
	for _, cell := range cells {
		b.WriteString(`<w:tc><w:p>`)
		writeRun(b, cell, props)
		b.WriteString(`</w:p></w:tc>`)
	}
	b.WriteString(`</w:tr>`)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
