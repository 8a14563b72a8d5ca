package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/finbook/model"
)

// Page geometry in twips (1/1440 inch): US Letter with one inch margins.
const (
	pageWidth  = 12240
	pageHeight = 15840
	pageMargin = 1440
	textWidth  = pageWidth - 2*pageMargin
)

// Content and relationship types written into the package.
const (
	ctRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	ctXML           = "application/xml"
	ctDocument      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ctStyles        = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	ctCore          = "application/vnd.openxmlformats-package.core-properties+xml"
	ctApp           = "application/vnd.openxmlformats-officedocument.extended-properties+xml"

	relOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relCore           = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relApp            = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
)

// DefaultApplication is recorded in docProps/app.xml when the document
// metadata does not name a creator.
const DefaultApplication = "finbook"

// zipEpoch is stamped on every archive entry so that encoding the same
// document twice yields identical bytes.
var zipEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// part is one file inside the package.
type part struct {
	name  string
	value interface{}
}

// WriteFile serializes doc as a DOCX package at path, creating or
// truncating the file.
func WriteFile(path string, doc *model.Document) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if err := Encode(f, doc); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Encode writes doc to w as a DOCX (Office Open XML) package.
func Encode(w io.Writer, doc *model.Document) error {
	if doc == nil {
		return fmt.Errorf("nil document")
	}

	parts := []part{
		{"[Content_Types].xml", buildContentTypes()},
		{"_rels/.rels", buildPackageRels()},
		{"docProps/core.xml", buildCoreProperties(doc.Metadata)},
		{"docProps/app.xml", buildAppProperties(doc.Metadata)},
		{"word/_rels/document.xml.rels", buildDocumentRels()},
		{"word/styles.xml", buildStyles()},
		{"word/document.xml", buildDocument(doc)},
	}

	zw := zip.NewWriter(w)
	for _, p := range parts {
		if err := writePart(zw, p); err != nil {
			zw.Close()
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing archive: %w", err)
	}
	return nil
}

// writePart marshals one part into the archive with a fixed timestamp.
func writePart(zw *zip.Writer, p part) error {
	fw, err := zw.CreateHeader(&zip.FileHeader{
		Name:     p.name,
		Method:   zip.Deflate,
		Modified: zipEpoch,
	})
	if err != nil {
		return fmt.Errorf("creating %s: %w", p.name, err)
	}
	if _, err := io.WriteString(fw, xml.Header); err != nil {
		return fmt.Errorf("writing %s: %w", p.name, err)
	}
	if err := xml.NewEncoder(fw).Encode(p.value); err != nil {
		return fmt.Errorf("encoding %s: %w", p.name, err)
	}
	return nil
}

func buildContentTypes() contentTypes {
	return contentTypes{
		Defaults: []contentTypeDefault{
			{Extension: "rels", ContentType: ctRelationships},
			{Extension: "xml", ContentType: ctXML},
		},
		Overrides: []contentTypeOverride{
			{PartName: "/word/document.xml", ContentType: ctDocument},
			{PartName: "/word/styles.xml", ContentType: ctStyles},
			{PartName: "/docProps/core.xml", ContentType: ctCore},
			{PartName: "/docProps/app.xml", ContentType: ctApp},
		},
	}
}

func buildPackageRels() relationships {
	return relationships{Relationships: []relationship{
		{ID: "rId1", Type: relOfficeDocument, Target: "word/document.xml"},
		{ID: "rId2", Type: relCore, Target: "docProps/core.xml"},
		{ID: "rId3", Type: relApp, Target: "docProps/app.xml"},
	}}
}

func buildDocumentRels() relationships {
	return relationships{Relationships: []relationship{
		{ID: "rId1", Type: relStyles, Target: "styles.xml"},
	}}
}

func buildCoreProperties(meta model.Metadata) wCoreProperties {
	core := wCoreProperties{
		XmlnsCP:        nsCP,
		XmlnsDC:        nsDC,
		XmlnsDCTerms:   nsDCTerms,
		XmlnsDCMI:      nsDCMI,
		XmlnsXSI:       nsXSI,
		Title:          clean(meta.Title),
		Subject:        clean(meta.Subject),
		Creator:        clean(meta.Author),
		Keywords:       clean(strings.Join(meta.Keywords, ", ")),
		LastModifiedBy: clean(meta.Author),
	}
	if !meta.CreationDate.IsZero() {
		core.Created = w3cdtf(meta.CreationDate)
	}
	if !meta.ModDate.IsZero() {
		core.Modified = w3cdtf(meta.ModDate)
	}
	return core
}

func w3cdtf(t time.Time) *wW3CDTF {
	return &wW3CDTF{Type: "dcterms:W3CDTF", Value: t.UTC().Format(time.RFC3339)}
}

func buildAppProperties(meta model.Metadata) appProperties {
	app := appProperties{Application: DefaultApplication}
	if meta.Creator != "" {
		app.Application = clean(meta.Creator)
	}
	app.Company = clean(meta.Custom["Company"])
	return app
}

func buildDocument(doc *model.Document) wDocument {
	body := wBody{
		Content: make([]interface{}, 0, len(doc.Elements)),
		SectPr: wSectPr{
			PgSz: wPgSz{W: itoa(pageWidth), H: itoa(pageHeight)},
			PgMar: wPgMar{
				Top: itoa(pageMargin), Right: itoa(pageMargin),
				Bottom: itoa(pageMargin), Left: itoa(pageMargin),
				Header: "720", Footer: "720", Gutter: "0",
			},
		},
	}

	for _, e := range doc.Elements {
		switch v := e.(type) {
		case *model.Heading:
			body.Content = append(body.Content, styledParagraph(v.Text, headingStyleID(v.Level), nil))
		case *model.Paragraph:
			body.Content = append(body.Content, styledParagraph(v.Text, "", runProps(v.Style)))
		case *model.Table:
			body.Content = append(body.Content, buildTable(v))
		case *model.PageBreak:
			body.Content = append(body.Content, wParagraph{
				Runs: []wRun{{Content: []interface{}{wBreak{Type: "page"}}}},
			})
		}
	}

	return wDocument{XmlnsW: nsW, XmlnsR: nsR, Body: body}
}

// headingStyleID maps a heading level to its built-in paragraph style.
func headingStyleID(level int) string {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return "Heading" + strconv.Itoa(level)
}

func runProps(style model.TextStyle) *wRPr {
	if !style.Bold && !style.Italic {
		return nil
	}
	rpr := &wRPr{}
	if style.Bold {
		rpr.Bold = &wOnOff{}
	}
	if style.Italic {
		rpr.Italic = &wOnOff{}
	}
	return rpr
}

// styledParagraph builds a paragraph with a single run. Newlines become
// <w:br/> and tabs become <w:tab/>.
func styledParagraph(text, styleID string, rpr *wRPr) wParagraph {
	p := wParagraph{}
	if styleID != "" {
		p.PPr = &wPPr{PStyle: &wVal{Val: styleID}}
	}
	if text == "" {
		return p
	}
	p.Runs = []wRun{{RPr: rpr, Content: runContent(clean(text))}}
	return p
}

func runContent(text string) []interface{} {
	var content []interface{}
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			content = append(content, wBreak{})
		}
		for j, seg := range strings.Split(line, "\t") {
			if j > 0 {
				content = append(content, wTab{})
			}
			if seg == "" {
				continue
			}
			t := wText{Value: seg}
			if strings.TrimSpace(seg) != seg {
				t.Space = "preserve"
			}
			content = append(content, t)
		}
	}
	return content
}

func buildTable(t *model.Table) wTable {
	cols := t.ColCount()
	colWidth := textWidth
	if cols > 0 {
		colWidth = textWidth / cols
	}

	style := t.Style
	if style == "" {
		style = "TableGrid"
	}

	tbl := wTable{
		TblPr: wTblPr{
			Style: wVal{Val: style},
			Width: wWidth{W: "0", Type: "auto"},
			Look:  wVal{Val: "04A0"},
		},
	}
	for i := 0; i < cols; i++ {
		tbl.Grid.Cols = append(tbl.Grid.Cols, wGridCol{W: itoa(colWidth)})
	}

	for _, row := range t.Rows {
		wr := wRow{}
		if len(row) > 0 && row[0].IsHeader {
			wr.TrPr = &wTrPr{Header: &wOnOff{}}
		}
		for _, cell := range row {
			wr.Cells = append(wr.Cells, wCell{
				TcPr: wTcPr{Width: wWidth{W: itoa(colWidth), Type: "dxa"}},
				// A cell must hold at least one paragraph, even when empty.
				Paragraphs: []wParagraph{styledParagraph(cell.Text, "", nil)},
			})
		}
		tbl.Rows = append(tbl.Rows, wr)
	}
	return tbl
}

// buildStyles returns the style sheet referenced by the document: Normal,
// Title, Heading1-6 and TableGrid.
func buildStyles() wStyles {
	styles := []wStyle{
		{
			Type: "paragraph", Default: "1", StyleID: "Normal",
			Name:    wVal{Val: "Normal"},
			QFormat: &wOnOff{},
			PPr:     &wStylePPr{Spacing: &wSpacing{After: "160"}},
			RPr:     &wRPr{Size: &wVal{Val: "22"}},
		},
		{
			Type: "paragraph", StyleID: "Title",
			Name:    wVal{Val: "Title"},
			BasedOn: &wVal{Val: "Normal"},
			Next:    &wVal{Val: "Normal"},
			QFormat: &wOnOff{},
			RPr:     &wRPr{Size: &wVal{Val: "56"}},
		},
	}

	// Sizes in half-points for heading levels 1-6.
	sizes := []string{"32", "26", "24", "22", "22", "22"}
	for i, sz := range sizes {
		level := i + 1
		styles = append(styles, wStyle{
			Type:    "paragraph",
			StyleID: headingStyleID(level),
			Name:    wVal{Val: "heading " + strconv.Itoa(level)},
			BasedOn: &wVal{Val: "Normal"},
			Next:    &wVal{Val: "Normal"},
			QFormat: &wOnOff{},
			PPr: &wStylePPr{
				KeepNext:   &wOnOff{},
				Spacing:    &wSpacing{Before: "240", After: "80"},
				OutlineLvl: &wVal{Val: strconv.Itoa(i)},
			},
			RPr: &wRPr{Bold: &wOnOff{}, Color: &wVal{Val: "365F91"}, Size: &wVal{Val: sz}},
		})
	}

	single := wBorder{Val: "single", Sz: "4", Space: "0", Color: "auto"}
	styles = append(styles, wStyle{
		Type: "table", StyleID: "TableGrid",
		Name: wVal{Val: "Table Grid"},
		TblPr: &wStyleTblPr{Borders: wBorders{
			Top: single, Left: single, Bottom: single, Right: single,
			InsideH: single, InsideV: single,
		}},
	})

	return wStyles{XmlnsW: nsW, Styles: styles}
}

// clean normalizes text to NFC and strips characters XML 1.0 cannot carry.
func clean(s string) string {
	s = norm.NFC.String(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return r
		case r < 0x20, r == 0xFFFE, r == 0xFFFF:
			return -1
		}
		return r
	}, s)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
