package model

// ElementType represents the type of a document element
type ElementType int

const (
	ElementTypeUnknown ElementType = iota
	ElementTypeParagraph
	ElementTypeHeading
	ElementTypeTable
	ElementTypePageBreak
)

func (et ElementType) String() string {
	switch et {
	case ElementTypeParagraph:
		return "Paragraph"
	case ElementTypeHeading:
		return "Heading"
	case ElementTypeTable:
		return "Table"
	case ElementTypePageBreak:
		return "PageBreak"
	default:
		return "Unknown"
	}
}

// Element is the interface for all block-level elements
type Element interface {
	Type() ElementType
}

// TextElement is an interface for elements containing text
type TextElement interface {
	Element
	GetText() string
}

// Paragraph represents a paragraph of text. Newlines in Text are rendered
// as line breaks within the paragraph.
type Paragraph struct {
	Text  string
	Style TextStyle
}

func (p *Paragraph) Type() ElementType { return ElementTypeParagraph }
func (p *Paragraph) GetText() string   { return p.Text }

// Heading represents a heading
type Heading struct {
	Text  string
	Level int // 1-6
}

func (h *Heading) Type() ElementType { return ElementTypeHeading }
func (h *Heading) GetText() string   { return h.Text }

// PageBreak represents a hard page break
type PageBreak struct{}

func (pb *PageBreak) Type() ElementType { return ElementTypePageBreak }

// TextStyle represents text styling
type TextStyle struct {
	Bold      bool
	Italic    bool
	Underline bool
}
