package model

import (
	"strings"
	"time"
)

// Document represents a complete document as an ordered list of block elements
type Document struct {
	Metadata Metadata
	Elements []Element
}

// Metadata contains document-level information
type Metadata struct {
	Title        string
	Author       string
	Subject      string
	Keywords     []string
	Creator      string
	CreationDate time.Time
	ModDate      time.Time
	// Custom metadata
	Custom map[string]string
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Metadata: Metadata{
			Custom: make(map[string]string),
		},
		Elements: make([]Element, 0),
	}
}

// Append adds elements to the end of the document
func (d *Document) Append(elems ...Element) {
	d.Elements = append(d.Elements, elems...)
}

// AddHeading appends a heading and returns it
func (d *Document) AddHeading(text string, level int) *Heading {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	h := &Heading{Text: text, Level: level}
	d.Append(h)
	return h
}

// AddParagraph appends a paragraph and returns it
func (d *Document) AddParagraph(text string) *Paragraph {
	p := &Paragraph{Text: text}
	d.Append(p)
	return p
}

// AddTable appends a table with the given header row and returns it
func (d *Document) AddTable(header ...string) *Table {
	t := NewTable(header...)
	d.Append(t)
	return t
}

// AddPageBreak appends a hard page break
func (d *Document) AddPageBreak() {
	d.Append(&PageBreak{})
}

// Len returns the number of elements
func (d *Document) Len() int {
	return len(d.Elements)
}

// Headings returns all headings in document order
func (d *Document) Headings() []*Heading {
	var out []*Heading
	for _, e := range d.Elements {
		if h, ok := e.(*Heading); ok {
			out = append(out, h)
		}
	}
	return out
}

// Paragraphs returns all paragraphs in document order
func (d *Document) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, e := range d.Elements {
		if p, ok := e.(*Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

// Tables returns all tables in document order
func (d *Document) Tables() []*Table {
	var out []*Table
	for _, e := range d.Elements {
		if t, ok := e.(*Table); ok {
			out = append(out, t)
		}
	}
	return out
}

// PageBreakCount returns the number of hard page breaks
func (d *Document) PageBreakCount() int {
	n := 0
	for _, e := range d.Elements {
		if e.Type() == ElementTypePageBreak {
			n++
		}
	}
	return n
}

// Sections splits the element stream at page breaks. The page breaks
// themselves are not part of any section. A document with n page breaks
// always has n+1 sections, some of which may be empty.
func (d *Document) Sections() [][]Element {
	sections := [][]Element{{}}
	for _, e := range d.Elements {
		if e.Type() == ElementTypePageBreak {
			sections = append(sections, []Element{})
			continue
		}
		last := len(sections) - 1
		sections[last] = append(sections[last], e)
	}
	return sections
}

// ExtractText returns all text content, one element per block
func (d *Document) ExtractText() string {
	var sb strings.Builder
	for _, e := range d.Elements {
		te, ok := e.(TextElement)
		if !ok {
			sb.WriteString("\n")
			continue
		}
		sb.WriteString(strings.TrimRight(te.GetText(), "\n"))
		sb.WriteString("\n")
	}
	return sb.String()
}

// TableOfContents returns headings organized as a document outline
func (d *Document) TableOfContents() []TOCEntry {
	var toc []TOCEntry
	section := 1
	for _, e := range d.Elements {
		switch v := e.(type) {
		case *PageBreak:
			section++
		case *Heading:
			toc = append(toc, TOCEntry{
				Level:   v.Level,
				Text:    v.Text,
				Section: section,
			})
		}
	}
	return toc
}

// TOCEntry represents an entry in the table of contents
type TOCEntry struct {
	Level   int    // Heading level (1-6)
	Text    string // Heading text
	Section int    // Section number (1-indexed), counted by page breaks
}
