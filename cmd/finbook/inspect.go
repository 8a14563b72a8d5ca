package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/finbook"
	"github.com/tsawler/finbook/model"
)

// NewInspectCmd creates the inspect command.
func NewInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the outline of a generated workbook",
		Long: `Read a DOCX or HTML workbook and print its outline: headings, table
shapes and page breaks, in document order. The format is detected from the
file content.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := finbook.Inspect(args[0])
			if err != nil {
				return err
			}
			text, _ := cmd.Flags().GetBool("text")
			if text {
				_, err = io.WriteString(cmd.OutOrStdout(), doc.ExtractText())
				return err
			}
			return printOutline(cmd.OutOrStdout(), doc)
		},
	}

	cmd.Flags().Bool("text", false, "Print the plain text instead of the outline")

	return cmd
}

// printOutline writes one line per heading, table and page break followed
// by a summary line.
func printOutline(w io.Writer, doc *model.Document) error {
	var b strings.Builder
	if doc.Metadata.Title != "" {
		fmt.Fprintf(&b, "title: %s\n", doc.Metadata.Title)
	}

	tables := 0
	for _, e := range doc.Elements {
		switch v := e.(type) {
		case *model.Heading:
			fmt.Fprintf(&b, "%s %s\n", strings.Repeat("#", v.Level), v.Text)
		case *model.Table:
			tables++
			fmt.Fprintf(&b, "  table %d: %d rows x %d columns\n", tables, v.RowCount(), v.ColCount())
		case *model.PageBreak:
			b.WriteString("---- page break ----\n")
		}
	}

	fmt.Fprintf(&b, "%d headings, %d paragraphs, %d tables, %d page breaks\n",
		len(doc.Headings()), len(doc.Paragraphs()), tables, doc.PageBreakCount())

	_, err := io.WriteString(w, b.String())
	return err
}
