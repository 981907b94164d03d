package luckydraw

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFileNotFound indicates the input workbook does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrWorkbookUnreadable indicates the input could not be decoded as a workbook.
var ErrWorkbookUnreadable = errors.New("workbook unreadable")

// ErrColumnNotFound indicates a requested column is missing from a sheet's header row.
var ErrColumnNotFound = errors.New("column not found")

// ErrSheetNotFound indicates no sheet matches the ticket source naming rule.
var ErrSheetNotFound = errors.New("sheet not found")

// ColumnNotFoundError names the column missing from a sheet's header row.
type ColumnNotFoundError struct {
	Sheet  string
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found in sheet %q", e.Column, e.Sheet)
}

// Is matches ErrColumnNotFound.
func (e *ColumnNotFoundError) Is(target error) bool {
	return target == ErrColumnNotFound
}

// SheetNotFoundError reports that no sheet matched the wanted name rule.
type SheetNotFoundError struct {
	Want      string
	Available []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("no sheet matching %s (available: %s)", e.Want, strings.Join(e.Available, ", "))
}

// Is matches ErrSheetNotFound.
func (e *SheetNotFoundError) Is(target error) bool {
	return target == ErrSheetNotFound
}

// ExtractionError represents an error while processing one sheet.
type ExtractionError struct {
	SheetName string
	Component string // "tickets", "eligibility"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
