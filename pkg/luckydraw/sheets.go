package luckydraw

import (
	"strings"

	"github.com/ukaji3/luckydraw-go/pkg/luckydraw/models"
)

// GenerationSheet is the ticket sheet used when no value-only copy exists.
const GenerationSheet = "Generation"

// RowSource lists a workbook's sheets and streams their rows.
type RowSource interface {
	// SheetList returns the sheet names in workbook order.
	SheetList() []string
	// Headers returns the row 1 texts of sheet.
	Headers(sheet string) ([]string, error)
	// Scan calls fn for each data row of sheet, in order.
	Scan(sheet string, fn func(row models.Row) error) error
}

// TicketSheet picks the ticket source: the first sheet whose name contains
// "value" and "only" (any case), otherwise the sheet named "Generation".
func TicketSheet(sheets []string) (string, error) {
	if name, ok := findSheet(sheets, "value", "only"); ok {
		return name, nil
	}
	for _, name := range sheets {
		if name == GenerationSheet {
			return name, nil
		}
	}
	return "", &SheetNotFoundError{
		Want:      `"value" and "only" or "` + GenerationSheet + `"`,
		Available: sheets,
	}
}

// EligibilitySheet picks the first sheet whose name contains "eligible" and "agent" (any case).
func EligibilitySheet(sheets []string) (string, bool) {
	return findSheet(sheets, "eligible", "agent")
}

func findSheet(sheets []string, words ...string) (string, bool) {
	for _, name := range sheets {
		lower := strings.ToLower(name)
		matched := true
		for _, w := range words {
			if !strings.Contains(lower, w) {
				matched = false
				break
			}
		}
		if matched {
			return name, true
		}
	}
	return "", false
}
