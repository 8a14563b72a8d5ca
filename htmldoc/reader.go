package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/finbook/model"
)

// Open parses an HTML file into a document.
func Open(filename string) (*model.Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads HTML from r and maps headings, paragraphs, tables and
// page-break rules onto a model.Document in document order.
func Parse(r io.Reader) (*model.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	doc := model.NewDocument()
	if head := findElement(root, "head"); head != nil {
		extractHead(head, &doc.Metadata)
	}

	body := findElement(root, "body")
	if body == nil {
		body = root
	}
	traverseNode(body, doc)

	return doc, nil
}

// extractHead copies title, author and keywords into meta.
func extractHead(head *html.Node, meta *model.Metadata) {
	for c := head.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "title":
			meta.Title = getTextContent(c)
		case "meta":
			switch getAttr(c, "name") {
			case "author":
				meta.Author = getAttr(c, "content")
			case "keywords":
				for _, kw := range strings.Split(getAttr(c, "content"), ",") {
					if kw = strings.TrimSpace(kw); kw != "" {
						meta.Keywords = append(meta.Keywords, kw)
					}
				}
			}
		}
	}
}

// traverseNode walks block-level content. Container elements are entered;
// everything else is mapped or ignored.
func traverseNode(n *html.Node, doc *model.Document) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if shouldSkipElement(c.Data) {
			continue
		}

		switch c.Data {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			level, _ := strconv.Atoi(c.Data[1:])
			if text := getTextContent(c); text != "" {
				doc.AddHeading(text, level)
			}
		case "p":
			if text := getTextContent(c); text != "" {
				p := doc.AddParagraph(text)
				p.Style.Bold = findElement(c, "strong") != nil || findElement(c, "b") != nil
				p.Style.Italic = findElement(c, "em") != nil || findElement(c, "i") != nil
			}
		case "table":
			doc.Append(parseTable(c))
		case "hr":
			if hasClass(c, PageBreakClass) {
				doc.AddPageBreak()
			}
		default:
			traverseNode(c, doc)
		}
	}
}

// parseTable extracts a table from an HTML table element.
func parseTable(tableNode *html.Node) *model.Table {
	table := &model.Table{}

	var walk func(n *html.Node, inHead bool)
	walk = func(n *html.Node, inHead bool) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "thead":
				walk(c, true)
			case "tbody", "tfoot":
				walk(c, false)
			case "tr":
				if row := parseTableRow(c, inHead); len(row) > 0 {
					table.Rows = append(table.Rows, row)
				}
			}
		}
	}
	walk(tableNode, false)

	return table
}

// parseTableRow parses a single table row. colspan is expanded into empty
// cells so rows keep the table width.
func parseTableRow(tr *html.Node, isHeader bool) []model.Cell {
	var row []model.Cell
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
			continue
		}
		header := isHeader || c.Data == "th"
		row = append(row, model.Cell{Text: getTextContent(c), IsHeader: header})
		if span, err := strconv.Atoi(getAttr(c, "colspan")); err == nil {
			for i := 1; i < span; i++ {
				row = append(row, model.Cell{IsHeader: header})
			}
		}
	}
	return row
}

// shouldSkipElement returns true if the element should be skipped during content extraction.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed", "nav":
		return true
	}
	return false
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

// getTextContent extracts text from a node and its descendants. <br>
// becomes a newline; surrounding whitespace is trimmed.
func getTextContent(n *html.Node) string {
	var result strings.Builder
	getTextContentRecursive(n, &result)
	return strings.TrimSpace(result.String())
}

func getTextContentRecursive(n *html.Node, result *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		result.WriteString(n.Data)
	case html.ElementNode:
		if shouldSkipElement(n.Data) {
			return
		}
		if n.Data == "br" {
			result.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		getTextContentRecursive(c, result)
	}
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(getAttr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}
