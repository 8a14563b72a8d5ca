// Package docx reads and writes DOCX (Office Open XML) documents.
//
// Encode and WriteFile serialize a model.Document into a WordprocessingML
// package. The output is deterministic: the same document always produces
// the same bytes. Open and NewReader parse a package back into a
// model.Document, which is how generated files are inspected and tested.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/finbook/model"
)

// Reader provides access to DOCX document content.
type Reader struct {
	zipReader *zip.Reader
	closer    io.Closer
	document  *documentXML
	resolver  *StyleResolver
	coreProps *corePropertiesXML
	appProps  *appPropertiesXML
}

// Open opens a DOCX file for reading.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r, err := newReader(&zr.Reader)
	if err != nil {
		zr.Close()
		return nil, err
	}
	r.closer = zr
	return r, nil
}

// NewReader reads a DOCX package from ra, which holds size bytes.
func NewReader(ra io.ReaderAt, size int64) (*Reader, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	return newReader(zr)
}

func newReader(zr *zip.Reader) (*Reader, error) {
	r := &Reader{zipReader: zr}

	// Validate required files exist
	if err := r.validate(); err != nil {
		return nil, err
	}

	if err := r.parseDocument(); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	// Styles and metadata are optional
	r.parseStyles()
	r.parseCoreProperties()
	r.parseAppProperties()

	return r, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}

// validate checks that required DOCX files exist.
func (r *Reader) validate() error {
	required := []string{
		"[Content_Types].xml",
		"word/document.xml",
	}

	fileMap := make(map[string]bool)
	for _, f := range r.zipReader.File {
		fileMap[f.Name] = true
	}

	for _, name := range required {
		if !fileMap[name] {
			return fmt.Errorf("missing required file: %s", name)
		}
	}

	return nil
}

// getFileContent reads the content of a file from the ZIP archive.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	for _, f := range r.zipReader.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// Files returns the names of all parts in the package, in archive order.
func (r *Reader) Files() []string {
	names := make([]string, 0, len(r.zipReader.File))
	for _, f := range r.zipReader.File {
		names = append(names, f.Name)
	}
	return names
}

// Document returns a model.Document with the body content in order.
func (r *Reader) Document() (*model.Document, error) {
	if r.document == nil {
		return nil, fmt.Errorf("document not parsed")
	}

	doc := model.NewDocument()
	doc.Metadata = r.Metadata()

	if r.document.Body == nil {
		return doc, nil
	}

	for _, be := range r.document.Body.Elements {
		switch {
		case be.Table != nil:
			doc.Append(parseTable(*be.Table))
		case be.Paragraph != nil:
			doc.Append(r.paragraphElements(*be.Paragraph)...)
		}
	}

	return doc, nil
}

// Text extracts and returns all text content from the document.
func (r *Reader) Text() (string, error) {
	doc, err := r.Document()
	if err != nil {
		return "", err
	}
	return doc.ExtractText(), nil
}

// Metadata returns document metadata.
func (r *Reader) Metadata() model.Metadata {
	meta := model.Metadata{Custom: make(map[string]string)}
	if r.coreProps != nil {
		meta.Title = r.coreProps.Title
		meta.Author = r.coreProps.Creator
		meta.Subject = r.coreProps.Subject
		if r.coreProps.Keywords != "" {
			meta.Keywords = strings.Split(r.coreProps.Keywords, ",")
			for i, kw := range meta.Keywords {
				meta.Keywords[i] = strings.TrimSpace(kw)
			}
		}
	}
	if r.appProps != nil {
		meta.Creator = r.appProps.Application
		if r.appProps.Company != "" {
			meta.Custom["Company"] = r.appProps.Company
		}
	}
	return meta
}

// parseDocument parses the main document content.
func (r *Reader) parseDocument() error {
	data, err := r.getFileContent("word/document.xml")
	if err != nil {
		return err
	}

	r.document = &documentXML{}
	if err := xml.Unmarshal(data, r.document); err != nil {
		return fmt.Errorf("unmarshaling document.xml: %w", err)
	}
	return nil
}

// parseStyles parses the styles definition file.
func (r *Reader) parseStyles() {
	var styles *stylesXML
	if data, err := r.getFileContent("word/styles.xml"); err == nil {
		styles = &stylesXML{}
		if xml.Unmarshal(data, styles) != nil {
			styles = nil
		}
	}
	r.resolver = NewStyleResolver(styles)
}

// parseCoreProperties parses Dublin Core metadata.
func (r *Reader) parseCoreProperties() {
	data, err := r.getFileContent("docProps/core.xml")
	if err != nil {
		return
	}

	props := &corePropertiesXML{}
	if xml.Unmarshal(data, props) == nil {
		r.coreProps = props
	}
}

// parseAppProperties parses application metadata.
func (r *Reader) parseAppProperties() {
	data, err := r.getFileContent("docProps/app.xml")
	if err != nil {
		return
	}

	props := &appPropertiesXML{}
	if xml.Unmarshal(data, props) == nil {
		r.appProps = props
	}
}

// paragraphElements converts one paragraph into model elements. A page
// break inside the paragraph splits it; a paragraph holding only a page
// break becomes a lone model.PageBreak.
func (r *Reader) paragraphElements(p paragraphXML) []model.Element {
	level := r.resolver.HeadingLevel(p.Properties.Style.Val)
	style := paragraphStyle(p)

	var out []model.Element
	emit := func(text string) {
		if text == "" {
			return
		}
		if level > 0 {
			out = append(out, &model.Heading{Text: text, Level: min(level, 6)})
			return
		}
		out = append(out, &model.Paragraph{Text: text, Style: style})
	}

	var sb strings.Builder
	for _, piece := range paragraphPieces(p) {
		if piece == pageBreakPiece {
			emit(sb.String())
			sb.Reset()
			out = append(out, &model.PageBreak{})
			continue
		}
		sb.WriteString(piece)
	}
	emit(sb.String())

	return out
}

// paragraphPieces returns the ordered run content of a paragraph,
// including text inside hyperlinks.
func paragraphPieces(p paragraphXML) []string {
	var pieces []string
	for _, run := range p.Runs {
		pieces = append(pieces, run.Pieces...)
	}
	for _, h := range p.Hyperlinks {
		for _, run := range h.Runs {
			pieces = append(pieces, run.Pieces...)
		}
	}
	return pieces
}

// paragraphText returns the text of a paragraph, dropping page breaks.
func paragraphText(p paragraphXML) string {
	var sb strings.Builder
	for _, piece := range paragraphPieces(p) {
		if piece != pageBreakPiece {
			sb.WriteString(piece)
		}
	}
	return sb.String()
}

// paragraphStyle reports bold/italic/underline when every run carries it.
func paragraphStyle(p paragraphXML) model.TextStyle {
	if len(p.Runs) == 0 {
		return model.TextStyle{}
	}
	style := model.TextStyle{Bold: true, Italic: true, Underline: true}
	for _, run := range p.Runs {
		style.Bold = style.Bold && run.Properties.Bold.on()
		style.Italic = style.Italic && run.Properties.Italic.on()
		u := run.Properties.Underline.Val
		style.Underline = style.Underline && u != "" && u != "none"
	}
	return style
}
