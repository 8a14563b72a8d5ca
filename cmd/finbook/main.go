// Package main provides the entry point for the finbook CLI.
//
// finbook writes the Betegna Finance App finance workbook.
//
// Usage:
//
//	finbook
//	finbook --output workbook.html
//	finbook inspect Finance_Workbook_Betegna_Finance_App.docx
//
// See --help for all available options.
package main

// main is the entry point for finbook.
func main() {
	Execute()
}
