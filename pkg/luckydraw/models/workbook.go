package models

// WorkbookSummary describes a workbook for the diagnostics listing.
type WorkbookSummary struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists every sheet in workbook order.
	Sheets []SheetPreview `json:"sheets"`
	// TicketSheet is the sheet that would be used as the ticket source (empty if none).
	TicketSheet string `json:"ticket_sheet"`
	// EligibilitySheet is the sheet that would be used as the roster source (empty if none).
	EligibilitySheet string `json:"eligibility_sheet"`
}
