// Package parser provides the excelize-backed row source for lucky draw workbooks.
package parser

import (
	"errors"

	"github.com/ukaji3/luckydraw-go/pkg/luckydraw/models"
	"github.com/xuri/excelize/v2"
)

// errStopScan ends a Scan early without reporting an error.
var errStopScan = errors.New("stop scan")

// Workbook streams rows out of an opened spreadsheet.
type Workbook struct {
	f *excelize.File
}

// Open opens the workbook at path (.xlsx, .xlsm).
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &Workbook{f: f}, nil
}

// NewWorkbook wraps an already opened excelize file.
func NewWorkbook(f *excelize.File) *Workbook {
	return &Workbook{f: f}
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// SheetList returns the sheet names in workbook order.
func (w *Workbook) SheetList() []string {
	return w.f.GetSheetList()
}

// Headers returns the texts of row 1. Blank headers are named "Col{n}".
func (w *Workbook) Headers(sheet string) ([]string, error) {
	var headers []string
	err := w.scanRows(sheet, func(rowNum int, cols []string) error {
		headers = headerNames(cols)
		return errStopScan
	})
	if err != nil {
		return nil, err
	}
	return headers, nil
}

// Scan calls fn for every data row (row 2 onwards) in order.
// Scanning stops at the first error returned by fn.
func (w *Workbook) Scan(sheet string, fn func(row models.Row) error) error {
	return w.scanRows(sheet, func(rowNum int, cols []string) error {
		if rowNum == 1 {
			return nil
		}
		return fn(models.Row{R: rowNum, Cells: toCells(cols)})
	})
}

// scanRows streams raw cell values row by row.
func (w *Workbook) scanRows(sheet string, fn func(rowNum int, cols []string) error) error {
	rows, err := w.f.Rows(sheet)
	if err != nil {
		return err
	}
	defer rows.Close()

	rowNum := 0
	for rows.Next() {
		rowNum++
		cols, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return err
		}
		if err := fn(rowNum, cols); err != nil {
			if errors.Is(err, errStopScan) {
				return nil
			}
			return err
		}
	}
	return rows.Error()
}

// Preview returns the headers and the first n data rows of a sheet.
func (w *Workbook) Preview(sheet string, n int) (models.SheetPreview, error) {
	rows, err := w.f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.SheetPreview{}, err
	}

	preview := models.SheetPreview{
		Name:      sheet,
		MaxRow:    len(rows),
		DataRange: DataRange(rows),
	}
	for _, row := range rows {
		if len(row) > preview.MaxCol {
			preview.MaxCol = len(row)
		}
	}
	if len(rows) == 0 {
		return preview, nil
	}

	header := make([]string, preview.MaxCol)
	copy(header, rows[0])
	preview.Headers = headerNames(header)
	for i := 1; i < len(rows) && i <= n; i++ {
		cells := make([]string, len(preview.Headers))
		copy(cells, rows[i])
		preview.Rows = append(preview.Rows, models.CellRow{R: i + 1, C: cells})
	}
	return preview, nil
}
