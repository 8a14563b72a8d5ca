package workbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/finbook/model"
)

func TestBuild_Structure(t *testing.T) {
	doc := Build()

	require.Equal(t, 2, doc.PageBreakCount())
	sections := doc.Sections()
	require.Len(t, sections, 3)

	titles := Worksheets()
	for i, section := range sections {
		// The title heading sits in front of the first worksheet.
		first := section[0]
		if i == 0 {
			h, ok := first.(*model.Heading)
			require.True(t, ok)
			assert.Equal(t, Title, h.Text)
			assert.Equal(t, 1, h.Level)
			first = section[1]
		}
		h, ok := first.(*model.Heading)
		require.True(t, ok, "section %d must open with its worksheet heading", i+1)
		assert.Equal(t, titles[i], h.Text)
		assert.Equal(t, 2, h.Level)
	}

	headings := doc.Headings()
	require.Len(t, headings, 4)
}

func TestBuild_TableShapes(t *testing.T) {
	tables := Build().Tables()
	require.Len(t, tables, 4)

	shapes := []struct {
		bodyRows int
		cols     int
	}{
		{16, 4},
		{4, 6},
		{8, 3},
		{1, 4},
	}
	for i, want := range shapes {
		tbl := tables[i]
		assert.Equal(t, want.bodyRows+1, tbl.RowCount(), "table %d rows", i+1)
		for r, row := range tbl.Rows {
			assert.Len(t, row, want.cols, "table %d row %d", i+1, r)
		}
		for _, c := range tbl.Header() {
			assert.True(t, c.IsHeader)
		}
	}
}

func TestBuild_TableSections(t *testing.T) {
	sections := Build().Sections()
	count := func(elems []model.Element) int {
		n := 0
		for _, e := range elems {
			if e.Type() == model.ElementTypeTable {
				n++
			}
		}
		return n
	}
	assert.Equal(t, 1, count(sections[0]))
	assert.Equal(t, 1, count(sections[1]))
	assert.Equal(t, 2, count(sections[2]))
}

func TestBuild_CellText(t *testing.T) {
	tables := Build().Tables()

	tests := []struct {
		name  string
		table int
		row   int
		want  []string
	}{
		{"budget header", 0, 0, []string{"Category", "Planned Amount (ETB)", "Actual Amount (ETB)", "Notes"}},
		{"income section", 0, 1, []string{"Income", "", "", ""}},
		{"total income", 0, 4, []string{"Total Income", "280,000", "260,000", ""}},
		{"net profit", 0, 16, []string{"Net Profit / Loss (Total Income - Expenses)", "65,000", "55,200", "Healthy startup margin Month 1"}},
		{"cash flow header", 1, 0, []string{"Month", "Cash Inflow (ETB)", "Cash Outflow (ETB)", "Net Cash Flow", "Beginning Cash Balance", "Ending Cash Balance"}},
		{"cash flow total", 1, 4, []string{"Total 3 Months", "960,000", "775,000", "+185,000", "-", "585,000 (Final Balance)"}},
		{"direct labor", 2, 2, []string{"Direct Labor (Wages per unit)", "25,000", "App development and support team"}},
		{"total direct cost", 2, 8, []string{"Total Direct Cost", "43,500", ""}},
		{"unit economics", 3, 1, []string{"1", "58,725", "43,500", "15,225"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tables[tt.table].RowText(tt.row))
		})
	}
}

func TestBuild_Paragraphs(t *testing.T) {
	var got []string
	for _, p := range Build().Paragraphs() {
		got = append(got, p.Text)
	}

	want := []string{
		"Monthly Business Budget Template (ETB)",
		"3-Month Cash Flow Forecast (ETB)",
		"Notes:\n- Steady revenue growth expected as more SMEs adopt the platform.\n" +
			"- Cash inflow includes purchase order financing repayments with interest.\n" +
			"- Expenses increase due to marketing and server capacity upgrades.",
		"Product Cost Breakdown and Pricing",
		"Product/Service Name: Betegna Finance App (All-in-One SME Finance Platform)",
		"Pricing Calculation",
		"Markup Percentage (%): 35%",
		"Selling Price = Total Cost + Markup",
		"Total Cost = 43,500 ETB",
		"Markup (35%) = 15,225 ETB",
		"Selling Price = 58,725 ETB per SME client package",
	}
	assert.Equal(t, want, got)
}

func TestBuild_Deterministic(t *testing.T) {
	a, b := Build(), Build()
	assert.Equal(t, a, b)
	assert.NotSame(t, a, b)
	assert.True(t, a.Metadata.CreationDate.IsZero(), "no timestamps are recorded")
}

func TestBuild_Metadata(t *testing.T) {
	meta := Build().Metadata
	assert.Equal(t, Title, meta.Title)
	assert.NotEmpty(t, meta.Subject)
	assert.Contains(t, meta.Keywords, "ETB")
}
