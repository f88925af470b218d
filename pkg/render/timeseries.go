package render

import (
	"encoding/json"
	"time"

	"smart-summary-be/pkg/trends"
)

// SeriesBlock is one node of a rendered time-series tree. A block is
// either a leaf table (Table set) or a named section containing
// further blocks (Children set). Depth records nesting for display
// indentation, starting at 0 for blocks directly under the group.
type SeriesBlock struct {
	Title    string        `json:"title"`
	Depth    int           `json:"depth"`
	Table    *Table        `json:"table,omitempty"`
	Children []SeriesBlock `json:"children,omitempty"`
}

// SeriesGroup is a titled collection of time-series blocks, one group
// per top-level dataset (economic indicators, industry trends).
type SeriesGroup struct {
	Title  string        `json:"title"`
	Blocks []SeriesBlock `json:"blocks"`
}

// RenderTimeSeries walks a nested dataset and produces Date/value
// tables for every series it finds. Series that are empty after
// trimming leading gaps are skipped, as are sections left with no
// content at all.
func RenderTimeSeries(node *trends.Node, sectionTitle string) *SeriesGroup {
	if node == nil {
		return nil
	}
	blocks := renderNode(node, 0)
	if len(blocks) == 0 {
		return nil
	}
	return &SeriesGroup{Title: sectionTitle, Blocks: blocks}
}

func renderNode(node *trends.Node, depth int) []SeriesBlock {
	var blocks []SeriesBlock
	for _, section := range node.Sections {
		child := section.Node
		if child.IsLeaf() {
			table := renderSeries(section.Name, child.Series)
			if table == nil {
				continue
			}
			blocks = append(blocks, SeriesBlock{
				Title: FormatHeader(section.Name),
				Depth: depth,
				Table: table,
			})
			continue
		}
		children := renderNode(&child, depth+1)
		if len(children) == 0 {
			continue
		}
		blocks = append(blocks, SeriesBlock{
			Title:    FormatHeader(section.Name),
			Depth:    depth,
			Children: children,
		})
	}
	return blocks
}

func renderSeries(key string, series []trends.Row) *Table {
	trimmed := FilterLeadingGaps(series)
	if len(trimmed) == 0 {
		return nil
	}

	t := &Table{
		Title:   FormatHeader(key),
		Columns: []string{"Date", FormatColumnHeader(key)},
	}
	for _, entry := range trimmed {
		value, ok := entry.Values[key]
		if !ok || value == nil {
			value, ok = entry.Values["value"]
			if !ok || value == nil {
				value = "N/A"
			}
		}
		t.Rows = append(t.Rows, []string{
			NormalizeDate(entry.Values["date"]),
			FormatNumber(value, key),
		})
	}
	return t
}

// FilterLeadingGaps drops entries from the front of a series until the
// first one carrying an observation. Gaps inside the series are kept
// so the timeline stays intact.
func FilterLeadingGaps(series []trends.Row) []trends.Row {
	start := len(series)
	for i, entry := range series {
		if !isGap(entry) {
			start = i
			break
		}
	}
	return series[start:]
}

func isGap(entry trends.Row) bool {
	v, ok := entry.Values["value"]
	if !ok || v == nil {
		for _, key := range entry.Keys {
			if key == "date" {
				continue
			}
			v, ok = entry.Values[key], true
			break
		}
	}
	if !ok || v == nil {
		return true
	}
	if s, isStr := v.(string); isStr && s == "N/A" {
		return true
	}
	return false
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"2006/01/02",
}

// NormalizeDate renders a date cell as YYYY-MM-DD. Unparseable values
// pass through verbatim so the row is never lost.
func NormalizeDate(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		for _, layout := range dateLayouts {
			if ts, err := time.Parse(layout, v); err == nil {
				return ts.Format("2006-01-02")
			}
		}
		return v
	case json.Number:
		if ms, err := v.Int64(); err == nil {
			return time.UnixMilli(ms).UTC().Format("2006-01-02")
		}
		return v.String()
	default:
		return FormatNumber(v, "date")
	}
}
