package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/tsawler/finbook/model"
)

// sampleDocument builds a small document exercising every element type.
func sampleDocument() *model.Document {
	doc := model.NewDocument()
	doc.Metadata.Title = "Sample"
	doc.Metadata.Subject = "Testing"
	doc.Metadata.Author = "Finance Team"
	doc.Metadata.Keywords = []string{"alpha", "beta"}
	doc.Metadata.Custom["Company"] = "Betegna"

	doc.AddHeading("Sample – Report", 1)
	doc.AddHeading("Sheet 1", 2)
	doc.AddParagraph("Intro paragraph")
	tbl := doc.AddTable("Category", "Amount", "Notes")
	tbl.MustAddRow("Rent", "20,000", "Office")
	tbl.MustAddRow("Total", "20,000", "")
	doc.AddPageBreak()
	doc.AddHeading("Sheet 2", 2)
	doc.AddParagraph("Notes:\n- first\n- second")
	doc.AddParagraph("  padded  ")
	return doc
}

// readPart returns the content of one part of an encoded package.
func readPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("zip.NewReader() error = %v", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening %s: %v", name, err)
		}
		defer rc.Close()
		b, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		return string(b)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func encode(t *testing.T, doc *model.Document) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	return buf.Bytes()
}

func TestEncode_Parts(t *testing.T) {
	data := encode(t, sampleDocument())
	r, err := NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}

	want := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/core.xml",
		"docProps/app.xml",
		"word/_rels/document.xml.rels",
		"word/styles.xml",
		"word/document.xml",
	}
	if got := r.Files(); !reflect.DeepEqual(got, want) {
		t.Errorf("Files() = %v, want %v", got, want)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	src := sampleDocument()
	data := encode(t, src)

	r, err := NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}
	got, err := r.Document()
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}

	if got.Len() != src.Len() {
		t.Fatalf("Len() = %d, want %d", got.Len(), src.Len())
	}
	for i := range src.Elements {
		if got.Elements[i].Type() != src.Elements[i].Type() {
			t.Errorf("Elements[%d] = %v, want %v", i, got.Elements[i].Type(), src.Elements[i].Type())
		}
	}
	for i, h := range src.Headings() {
		g := got.Headings()[i]
		if g.Text != h.Text || g.Level != h.Level {
			t.Errorf("heading %d = %+v, want %+v", i, g, h)
		}
	}
	for i, p := range src.Paragraphs() {
		if g := got.Paragraphs()[i].Text; g != p.Text {
			t.Errorf("paragraph %d = %q, want %q", i, g, p.Text)
		}
	}
	srcTbl, gotTbl := src.Tables()[0], got.Tables()[0]
	if !reflect.DeepEqual(gotTbl.Rows, srcTbl.Rows) {
		t.Errorf("table rows = %+v, want %+v", gotTbl.Rows, srcTbl.Rows)
	}
	if gotTbl.Style != "TableGrid" {
		t.Errorf("table style = %q, want TableGrid", gotTbl.Style)
	}

	meta := got.Metadata
	if meta.Title != "Sample" || meta.Subject != "Testing" || meta.Author != "Finance Team" {
		t.Errorf("Metadata = %+v", meta)
	}
	if !reflect.DeepEqual(meta.Keywords, []string{"alpha", "beta"}) {
		t.Errorf("Keywords = %v", meta.Keywords)
	}
	if meta.Creator != DefaultApplication {
		t.Errorf("Creator = %q, want %q", meta.Creator, DefaultApplication)
	}
	if meta.Custom["Company"] != "Betegna" {
		t.Errorf("Company = %q, want Betegna", meta.Custom["Company"])
	}
}

func TestEncode_Deterministic(t *testing.T) {
	first := encode(t, sampleDocument())
	second := encode(t, sampleDocument())
	if !bytes.Equal(first, second) {
		t.Error("encoding the same document twice produced different bytes")
	}
}

func TestEncode_DocumentMarkup(t *testing.T) {
	data := encode(t, sampleDocument())
	body := readPart(t, data, "word/document.xml")

	checks := []string{
		`<w:document xmlns:w="` + nsW + `"`,
		`<w:pStyle w:val="Heading1">`,
		`<w:pStyle w:val="Heading2">`,
		`<w:br w:type="page">`,
		`<w:tblStyle w:val="TableGrid">`,
		`<w:tblHeader>`,
		`<w:gridCol w:w="3120">`,
		`<w:t>Notes:</w:t><w:br></w:br><w:t>- first</w:t>`,
		`<w:t xml:space="preserve">  padded  </w:t>`,
		`<w:sectPr>`,
	}
	for _, want := range checks {
		if !strings.Contains(body, want) {
			t.Errorf("document.xml missing %q", want)
		}
	}
	if strings.Index(body, "<w:sectPr>") < strings.LastIndex(body, "</w:p>") {
		t.Error("sectPr must be the last child of the body")
	}
}

func TestEncode_Styles(t *testing.T) {
	styles := readPart(t, encode(t, model.NewDocument()), "word/styles.xml")
	for _, id := range []string{"Normal", "Title", "Heading1", "Heading6", "TableGrid"} {
		if !strings.Contains(styles, `w:styleId="`+id+`"`) {
			t.Errorf("styles.xml missing style %s", id)
		}
	}
}

func TestEncode_CoreDates(t *testing.T) {
	doc := model.NewDocument()
	core := readPart(t, encode(t, doc), "docProps/core.xml")
	if strings.Contains(core, "dcterms:created") {
		t.Error("core.xml should omit created when the date is zero")
	}

	doc.Metadata.CreationDate = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	core = readPart(t, encode(t, doc), "docProps/core.xml")
	if !strings.Contains(core, `<dcterms:created xsi:type="dcterms:W3CDTF">2024-03-01T12:00:00Z</dcterms:created>`) {
		t.Errorf("core.xml created date missing: %s", core)
	}
}

func TestEncode_NormalizesText(t *testing.T) {
	doc := model.NewDocument()
	doc.AddParagraph("Cafe\u0301\x01")
	body := readPart(t, encode(t, doc), "word/document.xml")
	if !strings.Contains(body, "<w:t>Caf\u00e9</w:t>") {
		t.Errorf("document.xml text not normalized: %s", body)
	}
}

func TestEncode_NilDocument(t *testing.T) {
	if err := Encode(io.Discard, nil); err == nil {
		t.Error("Encode(nil) should return error")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.docx")
	if err := WriteFile(path, sampleDocument()); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	doc, err := r.Document()
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}
	if doc.PageBreakCount() != 1 {
		t.Errorf("PageBreakCount() = %d, want 1", doc.PageBreakCount())
	}
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.docx")
	if err := os.WriteFile(path, bytes.Repeat([]byte("x"), 1<<16), 0644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, model.NewDocument()); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open() after overwrite error = %v", err)
	}
	r.Close()
}

func TestWriteFile_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.docx")
	err := WriteFile(path, model.NewDocument())
	if err == nil {
		t.Fatal("WriteFile() should fail when the directory does not exist")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("WriteFile() error = %v, want a not-exist error", err)
	}
}

func TestHeadingStyleID(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{0, "Heading1"},
		{1, "Heading1"},
		{3, "Heading3"},
		{7, "Heading6"},
	}
	for _, tt := range tests {
		if got := headingStyleID(tt.level); got != tt.want {
			t.Errorf("headingStyleID(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
