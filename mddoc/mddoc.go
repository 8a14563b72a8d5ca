// Package mddoc renders documents as GitHub-flavored Markdown.
package mddoc

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/tsawler/finbook/model"
)

// Render writes doc to w as Markdown. Headings map to #-headings, tables to
// pipe tables with the first row as header, and page breaks to horizontal
// rules.
func Render(w io.Writer, doc *model.Document) error {
	if doc == nil {
		return fmt.Errorf("nil document")
	}

	md := markdown.NewMarkdown(w)
	for i, e := range doc.Elements {
		if i > 0 {
			md.PlainText("")
		}
		switch v := e.(type) {
		case *model.Heading:
			writeHeading(md, v)
		case *model.Paragraph:
			md.PlainText(paragraphText(v))
		case *model.Table:
			md.Table(tableSet(v))
		case *model.PageBreak:
			md.HorizontalRule()
		}
	}

	if err := md.Build(); err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	return nil
}

func writeHeading(md *markdown.Markdown, h *model.Heading) {
	text := strings.ReplaceAll(h.Text, "\n", " ")
	switch h.Level {
	case 2:
		md.H2(text)
	case 3:
		md.H3(text)
	case 4:
		md.H4(text)
	case 5:
		md.H5(text)
	case 6:
		md.H6(text)
	default:
		md.H1(text)
	}
}

// paragraphText applies emphasis and keeps explicit line breaks. Lines that
// start a list item already break on their own; the rest get a trailing
// backslash hard break.
func paragraphText(p *model.Paragraph) string {
	lines := strings.Split(p.Text, "\n")
	for i := range lines {
		if p.Style.Bold && lines[i] != "" {
			lines[i] = "**" + lines[i] + "**"
		}
		if p.Style.Italic && lines[i] != "" {
			lines[i] = "_" + lines[i] + "_"
		}
	}
	for i := 0; i < len(lines)-1; i++ {
		if !strings.HasPrefix(lines[i+1], "- ") {
			lines[i] += "\\"
		}
	}
	return strings.Join(lines, "\n")
}

// tableSet converts a model table; row 0 is the header.
func tableSet(t *model.Table) markdown.TableSet {
	set := markdown.TableSet{Header: cellTexts(t.Header())}
	for _, row := range t.Body() {
		set.Rows = append(set.Rows, cellTexts(row))
	}
	return set
}

func cellTexts(cells []model.Cell) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		text := strings.ReplaceAll(c.Text, "\n", "<br>")
		out[i] = strings.ReplaceAll(text, "|", "\\|")
	}
	return out
}
