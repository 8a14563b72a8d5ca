package docx

import (
	"strconv"
	"strings"

	"github.com/tsawler/finbook/model"
)

// parseTable converts a table XML element into a model.Table. Cells that
// span several grid columns are followed by empty cells so every row keeps
// the grid width.
func parseTable(tbl tableXML) *model.Table {
	table := &model.Table{
		Style: tbl.Properties.Style.Val,
	}

	for _, row := range tbl.Rows {
		header := row.Properties.Header.on()
		cells := make([]model.Cell, 0, len(row.Cells))
		for _, tc := range row.Cells {
			cells = append(cells, model.Cell{
				Text:     cellText(tc),
				IsHeader: header,
			})
			for i := 1; i < parseSpan(tc.Properties.GridSpan.Val); i++ {
				cells = append(cells, model.Cell{IsHeader: header})
			}
		}
		table.Rows = append(table.Rows, cells)
	}

	return table
}

// cellText joins the paragraphs of a cell with newlines.
func cellText(tc tableCellXML) string {
	parts := make([]string, 0, len(tc.Paragraphs))
	for _, p := range tc.Paragraphs {
		parts = append(parts, paragraphText(p))
	}
	return strings.Join(parts, "\n")
}

// parseSpan parses a gridSpan value, defaulting to 1.
func parseSpan(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
