// Package model provides the in-memory representation of a generated
// document.
//
// A [Document] is an ordered stream of block-level [Element] values. It is
// created once, grown by append operations, and handed to a serializer
// (docx, htmldoc, mddoc) exactly once:
//
//	doc := model.NewDocument()
//	doc.AddHeading("Quarterly Report", 1)
//	doc.AddParagraph("Figures in ETB")
//	doc.AddPageBreak()
//
// # Elements
//
// All content implements the [Element] interface. The concrete types are:
//
//   - [Heading] - headings (levels 1-6)
//   - [Paragraph] - text paragraphs; embedded newlines are line breaks
//   - [Table] - fixed-width tables of text cells
//   - [PageBreak] - a hard page break
//
// # Tables
//
// A [Table] is created from its header row and grown one body row at a time.
// Cell values are display strings; the model never interprets them as numbers.
// Export helpers ToMarkdown() and ToCSV() are provided.
//
// # Sections
//
// [Document.Sections] splits the element stream at page breaks, which is how
// a multi-sheet workbook is laid out in a word-processing document.
package model
