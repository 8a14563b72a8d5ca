package mddoc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/finbook/model"
)

func TestRender(t *testing.T) {
	doc := model.NewDocument()
	doc.AddHeading("Workbook", 1)
	doc.AddHeading("Worksheet 1", 2)
	doc.AddParagraph("Monthly Budget")
	tbl := doc.AddTable("Category", "Amount")
	tbl.MustAddRow("Rent", "20,000")
	doc.AddPageBreak()
	doc.AddHeading("Deep", 9)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, doc))
	out := buf.String()

	assert.Contains(t, out, "# Workbook")
	assert.Contains(t, out, "## Worksheet 1")
	assert.Contains(t, out, "Monthly Budget")
	assert.Contains(t, out, "Category")
	assert.Contains(t, out, "20,000")
	assert.Contains(t, out, "---")
	assert.Less(t, strings.Index(out, "Worksheet 1"), strings.Index(out, "Category"))
	assert.Less(t, strings.Index(out, "Rent"), strings.Index(out, "Deep"))
}

func TestRender_NilDocument(t *testing.T) {
	assert.Error(t, Render(&bytes.Buffer{}, nil))
}

func TestParagraphText(t *testing.T) {
	tests := []struct {
		name string
		para model.Paragraph
		want string
	}{
		{"plain", model.Paragraph{Text: "Pricing"}, "Pricing"},
		{"list lines", model.Paragraph{Text: "Notes:\n- a\n- b"}, "Notes:\n- a\n- b"},
		{"hard breaks", model.Paragraph{Text: "one\ntwo"}, "one\\\ntwo"},
		{"bold", model.Paragraph{Text: "Total", Style: model.TextStyle{Bold: true}}, "**Total**"},
		{"italic", model.Paragraph{Text: "note", Style: model.TextStyle{Italic: true}}, "_note_"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paragraphText(&tt.para))
		})
	}
}

func TestTableSet(t *testing.T) {
	tbl := model.NewTable("A", "B")
	tbl.MustAddRow("x|y", "line1\nline2")

	set := tableSet(tbl)
	assert.Equal(t, []string{"A", "B"}, set.Header)
	assert.Equal(t, [][]string{{"x\\|y", "line1<br>line2"}}, set.Rows)
}
