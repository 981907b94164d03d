package luckydraw

import (
	"path/filepath"

	"github.com/ukaji3/luckydraw-go/pkg/luckydraw/models"
)

// PreviewRows is the number of data rows shown per sheet by Inspect.
const PreviewRows = 10

// Inspect summarizes the workbook at path: every sheet's headers and first rows,
// and which sheets the extraction would read.
func Inspect(path string) (*models.WorkbookSummary, error) {
	wb, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	sheets := wb.SheetList()
	summary := &models.WorkbookSummary{BookName: filepath.Base(path)}
	for _, name := range sheets {
		preview, err := wb.Preview(name, PreviewRows)
		if err != nil {
			return nil, NewExtractionError(name, "preview", err)
		}
		summary.Sheets = append(summary.Sheets, preview)
	}

	if name, err := TicketSheet(sheets); err == nil {
		summary.TicketSheet = name
	}
	if name, ok := EligibilitySheet(sheets); ok {
		summary.EligibilitySheet = name
	}
	return summary, nil
}
