package render

// Flatten walks the group tree and returns its leaf tables in display
// order. Nested section names are folded into the table title so the
// flat list stays unambiguous.
func (g *SeriesGroup) Flatten() []Table {
	if g == nil {
		return nil
	}
	var tables []Table
	flattenBlocks(g.Blocks, "", &tables)
	return tables
}

func flattenBlocks(blocks []SeriesBlock, prefix string, out *[]Table) {
	for _, block := range blocks {
		if block.Table != nil {
			t := *block.Table
			if prefix != "" {
				t.Title = prefix + " / " + t.Title
			}
			*out = append(*out, t)
			continue
		}
		childPrefix := block.Title
		if prefix != "" {
			childPrefix = prefix + " / " + block.Title
		}
		flattenBlocks(block.Children, childPrefix, out)
	}
}
