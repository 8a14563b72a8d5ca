// Package finbook generates the Betegna Finance App finance workbook.
//
// Basic usage, equivalent to running the finbook command with no flags:
//
//	if err := finbook.Generate(); err != nil {
//	    // handle error
//	}
//
// This writes Finance_Workbook_Betegna_Finance_App.docx to the current
// directory. With options:
//
//	err := finbook.New().
//	    Author("Finance Team").
//	    Format(format.HTML).
//	    WriteFile("workbook.html")
//
// The workbook content lives in the workbook package; the docx, htmldoc
// and mddoc packages serialize any model.Document and can be used directly.
package finbook

import (
	"github.com/tsawler/finbook/workbook"
)

// Generate writes the workbook as DOCX to workbook.DefaultFilename in the
// current directory, overwriting any existing file.
func Generate() error {
	return New().WriteFile(workbook.DefaultFilename)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	doc := finbook.Must(finbook.Inspect("workbook.docx"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
