package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRowTooWide is returned when a row has more values than the table has columns.
var ErrRowTooWide = errors.New("row has more cells than table columns")

// Table represents a fixed-width table of text cells. Row 0 is the header.
type Table struct {
	Rows  [][]Cell
	Style string // Style name used by serializers, e.g. "TableGrid"
}

func (t *Table) Type() ElementType { return ElementTypeTable }
func (t *Table) GetText() string {
	var sb strings.Builder
	for _, row := range t.Rows {
		for j, cell := range row {
			sb.WriteString(cell.Text)
			if j < len(row)-1 {
				sb.WriteString("\t")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// NewTable creates a table whose header row holds the given labels. The
// number of labels fixes the column count.
func NewTable(header ...string) *Table {
	row := make([]Cell, len(header))
	for i, h := range header {
		row[i] = Cell{Text: h, IsHeader: true}
	}
	return &Table{
		Rows: [][]Cell{row},
	}
}

// AddRow appends a body row. Missing trailing values are left empty.
func (t *Table) AddRow(values ...string) error {
	cols := t.ColCount()
	if len(values) > cols {
		return fmt.Errorf("%w: got %d, want %d", ErrRowTooWide, len(values), cols)
	}
	row := make([]Cell, cols)
	for i, v := range values {
		row[i].Text = v
	}
	t.Rows = append(t.Rows, row)
	return nil
}

// MustAddRow is like AddRow but panics on error. It is meant for literal
// content whose shape is known when the program is written.
func (t *Table) MustAddRow(values ...string) {
	if err := t.AddRow(values...); err != nil {
		panic(err)
	}
}

// RowCount returns the number of rows, header included
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns in the first row
func (t *Table) ColCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// Header returns the header row, or nil for an empty table
func (t *Table) Header() []Cell {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

// Body returns all rows after the header
func (t *Table) Body() [][]Cell {
	if len(t.Rows) < 2 {
		return nil
	}
	return t.Rows[1:]
}

// RowText returns the cell texts of the given row (0-indexed, header is 0)
func (t *Table) RowText(row int) []string {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	out := make([]string, len(t.Rows[row]))
	for i, c := range t.Rows[row] {
		out[i] = c.Text
	}
	return out
}

// GetCell returns the cell at the given row and column (0-indexed)
func (t *Table) GetCell(row, col int) *Cell {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return nil
	}
	return &t.Rows[row][col]
}

// ToMarkdown converts the table to markdown format
func (t *Table) ToMarkdown() string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder
	writeRow := func(row []Cell) {
		for j, cell := range row {
			sb.WriteString("| ")
			text := strings.ReplaceAll(cell.Text, "\n", " ")
			sb.WriteString(strings.ReplaceAll(text, "|", "\\|"))
			sb.WriteString(" ")
			if j == len(row)-1 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")
	}

	writeRow(t.Rows[0])
	for j := range t.Rows[0] {
		sb.WriteString("|---")
		if j == len(t.Rows[0])-1 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("\n")
	for _, row := range t.Body() {
		writeRow(row)
	}

	return sb.String()
}

// ToCSV converts the table to CSV format
func (t *Table) ToCSV() string {
	var sb strings.Builder
	for _, row := range t.Rows {
		for j, cell := range row {
			// Escape quotes and wrap in quotes if necessary
			text := cell.Text
			if strings.Contains(text, ",") || strings.Contains(text, "\"") || strings.Contains(text, "\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if j < len(row)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Cell represents a table cell
type Cell struct {
	Text     string
	IsHeader bool
}
