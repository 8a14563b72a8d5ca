package docx

import "encoding/xml"

// XML namespaces used in DOCX files
const (
	nsW       = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsDC      = "http://purl.org/dc/elements/1.1/"
	nsDCTerms = "http://purl.org/dc/terms/"
	nsDCMI    = "http://purl.org/dc/dcmitype/"
	nsCP      = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsXSI     = "http://www.w3.org/2001/XMLSchema-instance"
)

// documentXML represents the structure of word/document.xml as it is read.
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    *bodyXML `xml:"body"`
}

// bodyXML represents the document body. Elements keeps paragraphs and
// tables in document order; xml.Unmarshal alone would collect them into
// separate slices.
type bodyXML struct {
	Elements []bodyElement
}

// bodyElement represents an element in the document body (paragraph or table).
type bodyElement struct {
	Paragraph *paragraphXML
	Table     *tableXML
}

// UnmarshalXML decodes body children one at a time to preserve their order.
func (b *bodyXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				p := &paragraphXML{}
				if err := d.DecodeElement(p, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, bodyElement{Paragraph: p})
			case "tbl":
				tbl := &tableXML{}
				if err := d.DecodeElement(tbl, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, bodyElement{Table: tbl})
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// paragraphXML represents a paragraph element (<w:p>).
type paragraphXML struct {
	XMLName    xml.Name          `xml:"p"`
	Properties paragraphPropsXML `xml:"pPr"`
	Runs       []runXML          `xml:"r"`
	Hyperlinks []hyperlinkXML    `xml:"hyperlink"`
}

// paragraphPropsXML represents paragraph properties (<w:pPr>).
type paragraphPropsXML struct {
	Style      styleRefXML   `xml:"pStyle"`
	OutlineLvl outlineLvlXML `xml:"outlineLvl"`
}

// styleRefXML represents a style reference.
type styleRefXML struct {
	Val string `xml:"val,attr"`
}

// outlineLvlXML represents outline level.
type outlineLvlXML struct {
	Val string `xml:"val,attr"`
}

// hyperlinkXML represents a hyperlink.
type hyperlinkXML struct {
	ID   string   `xml:"id,attr"`
	Runs []runXML `xml:"r"`
}

// runXML represents a text run (<w:r>). Pieces holds the run content in
// order: text, tabs as "\t" and line breaks as "\n". A page break splits
// the run and is recorded as a pageBreakPiece.
type runXML struct {
	Properties runPropsXML
	Pieces     []string
}

// pageBreakPiece marks the position of <w:br w:type="page"/> within Pieces.
const pageBreakPiece = "\f"

// UnmarshalXML decodes run content in order. Struct tags alone would lose
// the interleaving of <w:t> and <w:br>.
func (r *runXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rPr":
				if err := d.DecodeElement(&r.Properties, &t); err != nil {
					return err
				}
			case "t":
				var txt textXML
				if err := d.DecodeElement(&txt, &t); err != nil {
					return err
				}
				r.Pieces = append(r.Pieces, txt.Value)
			case "tab":
				r.Pieces = append(r.Pieces, "\t")
				if err := d.Skip(); err != nil {
					return err
				}
			case "br", "cr":
				piece := "\n"
				for _, a := range t.Attr {
					if a.Name.Local == "type" && a.Value == "page" {
						piece = pageBreakPiece
					}
				}
				r.Pieces = append(r.Pieces, piece)
				if err := d.Skip(); err != nil {
					return err
				}
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// runPropsXML represents run properties (<w:rPr>).
type runPropsXML struct {
	Bold      boolXML      `xml:"b"`
	Italic    boolXML      `xml:"i"`
	Underline underlineXML `xml:"u"`
}

// boolXML represents a boolean attribute.
type boolXML struct {
	XMLName xml.Name
	Val     string `xml:"val,attr"`
}

// on reports whether the toggle element is present and not switched off.
func (b boolXML) on() bool {
	return b.XMLName.Local != "" && b.Val != "false" && b.Val != "0"
}

// underlineXML represents underline style.
type underlineXML struct {
	Val string `xml:"val,attr"` // single, double, etc.
}

// textXML represents text content (<w:t>).
type textXML struct {
	Space string `xml:"space,attr"` // preserve
	Value string `xml:",chardata"`
}

// tableXML represents a table (<w:tbl>).
type tableXML struct {
	XMLName    xml.Name      `xml:"tbl"`
	Properties tablePropsXML `xml:"tblPr"`
	Grid       tableGridXML  `xml:"tblGrid"`
	Rows       []tableRowXML `xml:"tr"`
}

// tablePropsXML represents table properties.
type tablePropsXML struct {
	Style styleRefXML `xml:"tblStyle"`
}

// tableGridXML represents table grid definition.
type tableGridXML struct {
	Cols []gridColXML `xml:"gridCol"`
}

// gridColXML represents a grid column.
type gridColXML struct {
	W string `xml:"w,attr"` // Width in twips
}

// tableRowXML represents a table row (<w:tr>).
type tableRowXML struct {
	XMLName    xml.Name       `xml:"tr"`
	Properties rowPropsXML    `xml:"trPr"`
	Cells      []tableCellXML `xml:"tc"`
}

// rowPropsXML represents row properties.
type rowPropsXML struct {
	Header boolXML `xml:"tblHeader"` // Is this a header row?
}

// tableCellXML represents a table cell (<w:tc>).
type tableCellXML struct {
	XMLName    xml.Name       `xml:"tc"`
	Properties cellPropsXML   `xml:"tcPr"`
	Paragraphs []paragraphXML `xml:"p"`
}

// cellPropsXML represents cell properties.
type cellPropsXML struct {
	GridSpan gridSpanXML `xml:"gridSpan"`
}

// gridSpanXML represents column span.
type gridSpanXML struct {
	Val string `xml:"val,attr"` // Number of columns spanned
}
