// Package models defines data structures for lucky draw extraction.
package models

import (
	"math"
	"strconv"
	"strings"
)

// Cell is a single raw cell value as read from a sheet.
// The zero value is the absent cell.
type Cell struct {
	// Raw is the stored cell text (raw numeric value for number cells).
	Raw string `json:"raw"`
}

// IsEmpty reports whether the cell is absent or holds only whitespace.
func (c Cell) IsEmpty() bool {
	return c.Text() == ""
}

// Text returns the cell text trimmed of surrounding whitespace.
func (c Cell) Text() string {
	return strings.TrimSpace(c.Raw)
}

// Number returns the cell as a finite number.
// Sentinel text ("None", "null"), unparseable text, NaN and infinities report false.
func (c Cell) Number() (float64, bool) {
	s := c.Text()
	switch s {
	case "", "None", "null":
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Row is one data row of a sheet.
type Row struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// Cells holds the row's values by column position (index 0 is column 1).
	Cells []Cell `json:"cells"`
}

// Get returns the cell at the 1-based column, or an empty cell when the row is shorter.
func (r Row) Get(col int) Cell {
	if col < 1 || col > len(r.Cells) {
		return Cell{}
	}
	return r.Cells[col-1]
}
