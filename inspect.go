package finbook

import (
	"fmt"
	"io"
	"os"

	"github.com/tsawler/finbook/docx"
	"github.com/tsawler/finbook/format"
	"github.com/tsawler/finbook/htmldoc"
	"github.com/tsawler/finbook/model"
)

// Inspect reads a generated DOCX or HTML file back into a document. The
// format is sniffed from the content, not the file name.
func Inspect(path string) (*model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	kind, err := format.DetectFromReader(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("detecting format of %s: %w", path, err)
	}

	switch kind {
	case format.DOCX:
		r, err := docx.NewReader(f, info.Size())
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		defer r.Close()
		return r.Document()
	case format.HTML:
		return htmldoc.Parse(io.NewSectionReader(f, 0, info.Size()))
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrUnsupported, path)
	}
}
