package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-summary-be/pkg/trends"
)

func decodeRows(t *testing.T, raw string) []trends.Row {
	t.Helper()
	var rows []trends.Row
	require.NoError(t, json.Unmarshal([]byte(raw), &rows))
	return rows
}

func TestRenderFlatTableColumnOrder(t *testing.T) {
	rows := decodeRows(t, `[
		{"year": 2022, "revenue": 1500000, "cogs": 400000.551},
		{"year": 2023, "revenue": 1750000, "cogs": 410000}
	]`)

	table := RenderFlatTable(rows, "income_statement")
	require.NotNil(t, table)

	assert.Equal(t, "Income Statement", table.Title)
	assert.Equal(t, []string{"Year", "Revenue", "Cost of Goods Sold"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"2022", "1,500,000", "400,000.55"}, table.Rows[0])
	assert.Equal(t, []string{"2023", "1,750,000", "410,000"}, table.Rows[1])
}

func TestRenderFlatTableDropsPlaceholderRows(t *testing.T) {
	rows := decodeRows(t, `[
		{"year": "N/A", "revenue": null},
		{"year": 2023, "revenue": 1750000},
		{"year": null, "revenue": "N/A"}
	]`)

	table := RenderFlatTable(rows, "revenue")
	require.NotNil(t, table)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"2023", "1,750,000"}, table.Rows[0])
}

func TestRenderFlatTableOmittedWhenEmpty(t *testing.T) {
	assert.Nil(t, RenderFlatTable(nil, "anything"))

	allPlaceholders := decodeRows(t, `[
		{"year": "N/A", "revenue": "N/A"},
		{"year": null, "revenue": null}
	]`)
	assert.Nil(t, RenderFlatTable(allPlaceholders, "anything"))
}

func TestRenderFlatTableMissingKeysRenderEmpty(t *testing.T) {
	rows := decodeRows(t, `[
		{"year": 2022, "revenue": 100},
		{"year": 2023}
	]`)

	table := RenderFlatTable(rows, "revenue")
	require.NotNil(t, table)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"2023", ""}, table.Rows[1])
}
