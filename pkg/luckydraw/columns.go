package luckydraw

// ColumnIndex returns the 1-based position of name in headers.
// Matching is exact: no trimming, case-sensitive.
func ColumnIndex(headers []string, name string) (int, bool) {
	for i, h := range headers {
		if h == name {
			return i + 1, true
		}
	}
	return 0, false
}

// ResolveColumns resolves every name against the header row of sheet.
// The first missing name fails the whole set with a ColumnNotFoundError.
func ResolveColumns(sheet string, headers []string, names ...string) ([]int, error) {
	idx := make([]int, len(names))
	for i, name := range names {
		col, ok := ColumnIndex(headers, name)
		if !ok {
			return nil, &ColumnNotFoundError{Sheet: sheet, Column: name}
		}
		idx[i] = col
	}
	return idx, nil
}
