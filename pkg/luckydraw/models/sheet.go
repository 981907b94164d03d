package models

// SheetPreview represents the shape and first rows of a single sheet.
type SheetPreview struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// MaxRow is the number of rows reported for the sheet.
	MaxRow int `json:"max_row"`
	// MaxCol is the widest row's column count.
	MaxCol int `json:"max_col"`
	// Headers contains the row 1 texts, blank headers shown as "Col{n}".
	Headers []string `json:"headers"`
	// Rows contains the first data rows (from row 2).
	Rows []CellRow `json:"rows,omitempty"`
	// DataRange is the cell range bounding all non-empty cells (e.g. "A1:I240").
	DataRange string `json:"data_range,omitempty"`
}

// CellRow represents a single previewed row.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C holds the row's texts by column position.
	C []string `json:"c"`
}
