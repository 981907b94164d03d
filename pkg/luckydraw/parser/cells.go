package parser

import (
	"strconv"

	"github.com/ukaji3/luckydraw-go/pkg/luckydraw/models"
)

// toCells converts raw column values to cells.
func toCells(cols []string) []models.Cell {
	cells := make([]models.Cell, len(cols))
	for i, v := range cols {
		cells[i] = models.Cell{Raw: v}
	}
	return cells
}

// headerNames returns the header texts, naming blank headers by their 1-based column ("Col3").
func headerNames(cols []string) []string {
	headers := make([]string, len(cols))
	for i, v := range cols {
		if v == "" {
			headers[i] = "Col" + strconv.Itoa(i+1)
			continue
		}
		headers[i] = v
	}
	return headers
}
