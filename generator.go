package finbook

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/tsawler/finbook/docx"
	"github.com/tsawler/finbook/format"
	"github.com/tsawler/finbook/htmldoc"
	"github.com/tsawler/finbook/mddoc"
	"github.com/tsawler/finbook/model"
	"github.com/tsawler/finbook/workbook"
)

// Generator provides a fluent interface for writing a document. Each
// configuration method returns a new Generator, so a configured value can
// be shared and reused.
type Generator struct {
	// Source
	build func() *model.Document

	// Configuration
	options GenerateOptions

	// Accumulated error (fail-fast)
	err error
}

// New returns a Generator for the finance workbook.
func New() *Generator {
	return &Generator{
		build:   workbook.Build,
		options: defaultOptions(),
	}
}

// FromDocument returns a Generator that writes doc instead of the workbook.
// The document is not copied; metadata options modify it in place.
func FromDocument(doc *model.Document) *Generator {
	g := New()
	g.build = func() *model.Document { return doc }
	if doc == nil {
		g.err = errors.New("nil document")
	}
	return g
}

// clone creates a shallow copy of the Generator with a copy of options.
func (g *Generator) clone() *Generator {
	return &Generator{
		build:   g.build,
		options: g.options.clone(),
		err:     g.err,
	}
}

// Author sets the document author recorded in the output metadata.
func (g *Generator) Author(name string) *Generator {
	ng := g.clone()
	ng.options.author = name
	return ng
}

// Company sets the company recorded in the DOCX application properties.
func (g *Generator) Company(name string) *Generator {
	ng := g.clone()
	ng.options.company = name
	return ng
}

// Format forces the output format. Without it the format follows the file
// extension given to WriteFile, falling back to DOCX.
func (g *Generator) Format(f format.Format) *Generator {
	ng := g.clone()
	if f == format.Unknown && ng.err == nil {
		ng.err = fmt.Errorf("%w: %s", format.ErrUnsupported, f)
	}
	ng.options.format = f
	return ng
}

// Logger sets the logger used to report generation steps.
func (g *Generator) Logger(l *zap.Logger) *Generator {
	ng := g.clone()
	if l == nil {
		l = zap.NewNop()
	}
	ng.options.logger = l
	return ng
}

// Document assembles the document and applies metadata options.
func (g *Generator) Document() (*model.Document, error) {
	if g.err != nil {
		return nil, g.err
	}

	g.options.logger.Debug("assembling document")
	doc := g.build()
	if g.options.author != "" {
		doc.Metadata.Author = g.options.author
	}
	if g.options.company != "" {
		if doc.Metadata.Custom == nil {
			doc.Metadata.Custom = make(map[string]string)
		}
		doc.Metadata.Custom["Company"] = g.options.company
	}
	g.options.logger.Debug("document assembled",
		zap.Int("elements", doc.Len()),
		zap.Int("tables", len(doc.Tables())),
		zap.Int("page_breaks", doc.PageBreakCount()),
	)
	return doc, nil
}

// Write serializes the document to w. The format defaults to DOCX.
func (g *Generator) Write(w io.Writer) error {
	doc, err := g.Document()
	if err != nil {
		return err
	}
	f := g.options.format
	if f == format.Unknown {
		f = format.DOCX
	}
	return encode(w, doc, f)
}

// WriteFile serializes the document to path, creating or truncating it.
// Any I/O failure is returned; nothing is retried and a partially written
// file is left in place.
func (g *Generator) WriteFile(path string) (err error) {
	doc, err := g.Document()
	if err != nil {
		return err
	}

	f := g.resolveFormat(path)
	log := g.options.logger.With(zap.String("path", path), zap.Stringer("format", f))
	log.Debug("writing document")

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if err := encode(out, doc, f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	log.Info("document written")
	return nil
}

// resolveFormat picks the explicit format, then the extension, then DOCX.
func (g *Generator) resolveFormat(path string) format.Format {
	if g.options.format != format.Unknown {
		return g.options.format
	}
	if f := format.Detect(path); f != format.Unknown {
		return f
	}
	return format.DOCX
}

func encode(w io.Writer, doc *model.Document, f format.Format) error {
	switch f {
	case format.DOCX:
		return docx.Encode(w, doc)
	case format.HTML:
		return htmldoc.Render(w, doc)
	case format.Markdown:
		return mddoc.Render(w, doc)
	default:
		return fmt.Errorf("%w: %s", format.ErrUnsupported, f)
	}
}
