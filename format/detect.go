// Package format provides document format detection for finbook.
package format

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrUnsupported is returned when a format name or file cannot be mapped to
// a supported format.
var ErrUnsupported = errors.New("unsupported format")

// Format represents a supported document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
	// HTML indicates an HTML document.
	HTML
	// Markdown indicates a Markdown document.
	Markdown
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case DOCX:
		return "DOCX"
	case HTML:
		return "HTML"
	case Markdown:
		return "Markdown"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case DOCX:
		return ".docx"
	case HTML:
		return ".html"
	case Markdown:
		return ".md"
	default:
		return ""
	}
}

// Parse maps a format name such as "docx", "html" or "markdown" to a Format.
// Matching is case-insensitive and accepts a leading dot.
func Parse(name string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), ".") {
	case "docx", "word":
		return DOCX, nil
	case "html", "htm":
		return HTML, nil
	case "md", "markdown":
		return Markdown, nil
	default:
		return Unknown, fmt.Errorf("%w: %q", ErrUnsupported, name)
	}
}

// Detect maps a filename extension to a Format, or Unknown.
func Detect(filename string) Format {
	ext := filepath.Ext(filename)
	if ext == "" {
		return Unknown
	}
	f, err := Parse(ext)
	if err != nil || strings.EqualFold(ext, ".word") {
		return Unknown
	}
	return f
}

// ReplaceExtension returns filename with its extension swapped for the
// format's extension.
func ReplaceExtension(filename string, f Format) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + f.Extension()
}

// htmlSignatures are matched against the upper-cased start of a file.
var htmlSignatures = [][]byte{
	[]byte("<!DOCTYPE HTML"),
	[]byte("<HTML"),
}

// detectHTMLMagic reports whether data starts like an HTML or XHTML page.
func detectHTMLMagic(data []byte) bool {
	head := bytes.ToUpper(bytes.TrimLeft(data, " \t\r\n"))
	for _, sig := range htmlSignatures {
		if bytes.HasPrefix(head, sig) {
			return true
		}
	}
	// An XML declaration is XHTML only if an html root follows soon after.
	return bytes.HasPrefix(head, []byte("<?XML")) &&
		bytes.Contains(head[:min(500, len(head))], []byte("<HTML"))
}

// zipMagic opens every ZIP local file header, and so every DOCX.
var zipMagic = []byte("PK\x03\x04")

// DetectFromReader inspects the content to determine format. ZIP archives
// are reported as DOCX only when they carry a word/ part. Markdown has no
// signature and is never detected from content.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 512)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	if bytes.HasPrefix(magic, zipMagic) {
		return detectZIPFormat(r, size)
	}

	if detectHTMLMagic(magic) {
		return HTML, nil
	}

	return Unknown, nil
}

// detectZIPFormat inspects a ZIP archive for Office Open XML word parts.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "word/") {
			return DOCX, nil
		}
	}

	return Unknown, nil
}
