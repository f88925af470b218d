// Package markdown converts backend narrative text into the shapes
// the export surfaces need: rich HTML, plain text, and a flat block
// list for paginated documents.
package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

type BlockKind int

const (
	KindParagraph BlockKind = iota
	KindHeading
	KindBullet
)

// Block is one renderable unit of narrative. Level carries the
// heading level for headings and the nesting depth for bullets.
type Block struct {
	Kind  BlockKind
	Level int
	Text  string
}

var engine = goldmark.New(goldmark.WithExtensions(extension.GFM))

// RichHTML renders the narrative as HTML for clipboard rich mode and
// email bodies.
func RichHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := engine.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Blocks parses the narrative into a flat sequence of headings,
// paragraphs and bullets. Inline markup is stripped down to its text,
// links keep their label.
func Blocks(src string) []Block {
	source := []byte(src)
	doc := engine.Parser().Parse(text.NewReader(source))

	var blocks []Block
	appendBlocks(doc, source, &blocks)
	return blocks
}

// Plain flattens the narrative for clipboard plain mode: headings get
// a trailing colon, bullets are tab-indented, everything else is bare
// text separated by blank lines.
func Plain(src string) string {
	blocks := Blocks(src)

	var b strings.Builder
	for i, blk := range blocks {
		if i > 0 {
			if blk.Kind == KindBullet && blocks[i-1].Kind == KindBullet {
				b.WriteByte('\n')
			} else {
				b.WriteString("\n\n")
			}
		}
		switch blk.Kind {
		case KindHeading:
			b.WriteString(blk.Text)
			b.WriteByte(':')
		case KindBullet:
			b.WriteString(strings.Repeat("\t", blk.Level))
			b.WriteString("- ")
			b.WriteString(blk.Text)
		default:
			b.WriteString(blk.Text)
		}
	}
	return b.String()
}

func appendBlocks(n ast.Node, source []byte, blocks *[]Block) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *ast.Heading:
			*blocks = append(*blocks, Block{Kind: KindHeading, Level: c.Level, Text: inlineText(c, source)})
		case *ast.Paragraph, *ast.TextBlock:
			if txt := inlineText(child, source); txt != "" {
				*blocks = append(*blocks, Block{Kind: KindParagraph, Text: txt})
			}
		case *ast.List:
			appendList(c, source, blocks, 1)
		case *ast.Blockquote:
			appendBlocks(c, source, blocks)
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			*blocks = append(*blocks, Block{Kind: KindParagraph, Text: rawLines(child, source)})
		}
	}
}

func appendList(list *ast.List, source []byte, blocks *[]Block, depth int) {
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			if nested, ok := c.(*ast.List); ok {
				appendList(nested, source, blocks, depth+1)
				continue
			}
			if txt := inlineText(c, source); txt != "" {
				*blocks = append(*blocks, Block{Kind: KindBullet, Level: depth, Text: txt})
			}
		}
	}
}

func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		case *ast.AutoLink:
			b.Write(t.URL(source))
		default:
			b.WriteString(inlineText(c, source))
		}
	}
	return strings.TrimSpace(b.String())
}

func rawLines(n ast.Node, source []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return strings.TrimRight(b.String(), "\n")
}
