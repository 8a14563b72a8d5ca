// Package workbook assembles the Betegna Finance App finance workbook: a
// title and three worksheets (budget planning, cash flow projection and
// product costing/pricing) separated by page breaks.
//
// All figures are display strings typed into the source. Nothing here
// computes, cross-checks or reads them from elsewhere; a total that adds up
// does so because it was typed that way.
package workbook

import "github.com/tsawler/finbook/model"

// DefaultFilename is the file the workbook is written to when no other path
// is given.
const DefaultFilename = "Finance_Workbook_Betegna_Finance_App.docx"

// Title is the level 1 heading at the top of the workbook.
const Title = "Finance Workbook – Betegna Finance App (Ethiopia)"

// Worksheet headings, in document order.
const (
	BudgetPlanningTitle = "Worksheet 1: Budget Planning Worksheet"
	CashFlowTitle       = "Worksheet 2: Cash Flow Projection Worksheet"
	ProductCostingTitle = "Worksheet 3: Product Costing & Pricing Worksheet"
)

// Worksheets returns the worksheet headings in document order.
func Worksheets() []string {
	return []string{BudgetPlanningTitle, CashFlowTitle, ProductCostingTitle}
}

// Build assembles the workbook. Every call returns a fresh document with
// identical content.
func Build() *model.Document {
	doc := model.NewDocument()
	doc.Metadata.Title = Title
	doc.Metadata.Subject = "Budget planning, cash flow projection and product costing worksheets"
	doc.Metadata.Keywords = []string{"Betegna", "Finance", "ETB", "Worksheet"}

	doc.AddHeading(Title, 1)

	addBudgetPlanning(doc)
	doc.AddPageBreak()
	addCashFlow(doc)
	doc.AddPageBreak()
	addProductCosting(doc)

	return doc
}

// addRows appends literal rows to a table.
func addRows(t *model.Table, rows [][]string) {
	for _, row := range rows {
		t.MustAddRow(row...)
	}
}

func addBudgetPlanning(doc *model.Document) {
	doc.AddHeading(BudgetPlanningTitle, 2)
	doc.AddParagraph("Monthly Business Budget Template (ETB)")

	t := doc.AddTable("Category", "Planned Amount (ETB)", "Actual Amount (ETB)", "Notes")
	addRows(t, [][]string{
		{"Income", "", "", ""},
		{"Sales Revenue", "220,000", "210,000", "SME app subscriptions, PO finance interest fees"},
		{"Other Income (e.g., grants, partnerships)", "60,000", "50,000", "Fintech innovation grant & consulting services"},
		{"Total Income", "280,000", "260,000", ""},
		{"Expenses", "", "", ""},
		{"Rent", "20,000", "20,000", "Office in Addis Ababa"},
		{"Utilities (Electricity, Water, Internet)", "10,000", "9,500", "Regular utilities & SaaS hosting"},
		{"Raw Materials / Supplies", "6,000", "5,800", "Office materials, server costs"},
		{"Employee Wages", "130,000", "125,000", "Developers, finance analyst, admin staff"},
		{"Transportation", "10,000", "9,000", "Client meetings and travel"},
		{"Marketing / Promotion", "25,000", "23,000", "SME outreach campaigns and online ads"},
		{"Loan Repayments", "0", "0", "None in initial stage"},
		{"Equipment Maintenance", "5,000", "4,500", "Computer & server upkeep"},
		{"Miscellaneous", "9,000", "8,000", "Unexpected operating costs"},
		{"Total Expenses", "215,000", "204,800", ""},
		{"Net Profit / Loss (Total Income - Expenses)", "65,000", "55,200", "Healthy startup margin Month 1"},
	})
}

func addCashFlow(doc *model.Document) {
	doc.AddHeading(CashFlowTitle, 2)
	doc.AddParagraph("3-Month Cash Flow Forecast (ETB)")

	t := doc.AddTable("Month", "Cash Inflow (ETB)", "Cash Outflow (ETB)", "Net Cash Flow", "Beginning Cash Balance", "Ending Cash Balance")
	addRows(t, [][]string{
		{"Month 1", "280,000", "215,000", "+65,000", "400,000", "465,000"},
		{"Month 2", "320,000", "260,000", "+60,000", "465,000", "525,000"},
		{"Month 3", "360,000", "300,000", "+60,000", "525,000", "585,000"},
		{"Total 3 Months", "960,000", "775,000", "+185,000", "-", "585,000 (Final Balance)"},
	})

	doc.AddParagraph("Notes:\n" +
		"- Steady revenue growth expected as more SMEs adopt the platform.\n" +
		"- Cash inflow includes purchase order financing repayments with interest.\n" +
		"- Expenses increase due to marketing and server capacity upgrades.")
}

func addProductCosting(doc *model.Document) {
	doc.AddHeading(ProductCostingTitle, 2)
	doc.AddParagraph("Product Cost Breakdown and Pricing")
	doc.AddParagraph("Product/Service Name: Betegna Finance App (All-in-One SME Finance Platform)")

	costs := doc.AddTable("Cost Type", "Amount (ETB)", "Details")
	addRows(costs, [][]string{
		{"Direct Materials", "5,000", "Cloud server hosting, API tools"},
		{"Direct Labor (Wages per unit)", "25,000", "App development and support team"},
		{"Packaging", "2,000", "UI/UX design and branding"},
		{"Transport / Delivery", "1,500", "Customer demos and site visits"},
		{"Utilities per unit", "3,000", "Power, internet, data storage"},
		{"Marketing Cost", "5,000", "Digital ad per client acquisition"},
		{"Miscellaneous", "2,000", "Contingency and testing"},
		{"Total Direct Cost", "43,500", ""},
	})

	for _, line := range []string{
		"Pricing Calculation",
		"Markup Percentage (%): 35%",
		"Selling Price = Total Cost + Markup",
		"Total Cost = 43,500 ETB",
		"Markup (35%) = 15,225 ETB",
		"Selling Price = 58,725 ETB per SME client package",
	} {
		doc.AddParagraph(line)
	}

	unit := doc.AddTable("Unit", "Selling Price (ETB)", "Total Cost (ETB)", "Profit per Unit (ETB)")
	addRows(unit, [][]string{
		{"1", "58,725", "43,500", "15,225"},
	})
}
