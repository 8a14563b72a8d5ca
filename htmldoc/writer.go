// Package htmldoc renders documents as HTML and reads them back.
//
// Render builds a golang.org/x/net/html node tree and serializes it with
// html.Render, so escaping and void elements follow the HTML5 rules.
// Parse maps HTML produced by Render (or any simple HTML page) back onto a
// model.Document.
package htmldoc

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/finbook/model"
)

// PageBreakClass marks the <hr> elements that stand for page breaks.
const PageBreakClass = "page-break"

// stylesheet keeps tables readable and turns page-break rules into real
// page breaks when printing.
const stylesheet = `body{font-family:Calibri,Arial,sans-serif;max-width:60em;margin:2em auto}
table{border-collapse:collapse;margin:1em 0}
th,td{border:1px solid #444;padding:.3em .6em;vertical-align:top}
th{background:#eef}
hr.page-break{border:0;page-break-after:always;break-after:page}`

// Render writes doc to w as a complete HTML5 document.
func Render(w io.Writer, doc *model.Document) error {
	if doc == nil {
		return fmt.Errorf("nil document")
	}

	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlNode := element("html", attr("lang", "en"))
	root.AppendChild(htmlNode)

	head := element("head")
	head.AppendChild(element("meta", attr("charset", "utf-8")))
	if doc.Metadata.Title != "" {
		head.AppendChild(withText(element("title"), doc.Metadata.Title))
	}
	if doc.Metadata.Author != "" {
		head.AppendChild(element("meta", attr("name", "author"), attr("content", doc.Metadata.Author)))
	}
	if len(doc.Metadata.Keywords) > 0 {
		head.AppendChild(element("meta", attr("name", "keywords"), attr("content", strings.Join(doc.Metadata.Keywords, ", "))))
	}
	head.AppendChild(withText(element("style"), stylesheet))
	htmlNode.AppendChild(head)

	body := element("body")
	htmlNode.AppendChild(body)

	for _, e := range doc.Elements {
		switch v := e.(type) {
		case *model.Heading:
			level := v.Level
			if level < 1 || level > 6 {
				level = 1
			}
			body.AppendChild(withLines(element("h"+strconv.Itoa(level)), v.Text))
		case *model.Paragraph:
			p := element("p")
			target := p
			if v.Style.Bold {
				target = appendTo(target, element("strong"))
			}
			if v.Style.Italic {
				target = appendTo(target, element("em"))
			}
			withLines(target, v.Text)
			body.AppendChild(p)
		case *model.Table:
			body.AppendChild(renderTable(v))
		case *model.PageBreak:
			body.AppendChild(element("hr", attr("class", PageBreakClass)))
		}
	}

	if err := html.Render(w, root); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	return nil
}

// renderTable emits header rows in <thead> and the rest in <tbody>.
func renderTable(t *model.Table) *html.Node {
	table := element("table")
	thead := element("thead")
	tbody := element("tbody")

	for _, row := range t.Rows {
		header := len(row) > 0 && row[0].IsHeader
		tr := element("tr")
		for _, cell := range row {
			tag := "td"
			if cell.IsHeader {
				tag = "th"
			}
			tr.AppendChild(withLines(element(tag), cell.Text))
		}
		if header {
			thead.AppendChild(tr)
		} else {
			tbody.AppendChild(tr)
		}
	}

	if thead.FirstChild != nil {
		table.AppendChild(thead)
	}
	if tbody.FirstChild != nil {
		table.AppendChild(tbody)
	}
	return table
}

func element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func appendTo(parent, child *html.Node) *html.Node {
	parent.AppendChild(child)
	return child
}

func withText(n *html.Node, text string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

// withLines appends text to n, turning newlines into <br> elements.
func withLines(n *html.Node, text string) *html.Node {
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			n.AppendChild(element("br"))
		}
		if line != "" {
			withText(n, line)
		}
	}
	return n
}
