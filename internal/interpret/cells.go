package interpret

import "github.com/tidwall/gjson"

// Headers returns the display header row: the inferred columns when any were
// derived, otherwise the first named row's keys, otherwise nil (rendered as
// an empty header row).
func (v View) Headers() []string {
	if len(v.Columns) > 0 {
		return v.Columns
	}
	if len(v.Rows) > 0 && v.Rows[0].Named() {
		return v.Rows[0].Keys
	}
	return nil
}

// CellValue resolves the value for header position i with name headers[i]:
// exact key match first, then the row's i-th entry by key order, then empty.
// The positional fallback keeps anonymized columns like col_1 rendering, but
// can silently misalign when inferred headers and row arity differ; accepted
// limitation.
func CellValue(row Row, headers []string, i int) string {
	if row.Scalar {
		if i == 0 {
			return cellString(row.Values[0])
		}
		return ""
	}
	if !row.Named() {
		if i < len(row.Values) {
			return cellString(row.Values[i])
		}
		return ""
	}
	if i < len(headers) {
		for j, key := range row.Keys {
			if key == headers[i] {
				return cellString(row.Values[j])
			}
		}
	}
	if i < len(row.Values) {
		return cellString(row.Values[i])
	}
	return ""
}

// Cells renders the full cell matrix against Headers. A scalar row renders
// directly as its sole cell.
func (v View) Cells() [][]string {
	headers := v.Headers()
	cells := make([][]string, 0, len(v.Rows))
	for _, row := range v.Rows {
		if row.Scalar {
			cells = append(cells, []string{cellString(row.Values[0])})
			continue
		}
		width := len(headers)
		if width == 0 {
			width = len(row.Values)
		}
		rendered := make([]string, width)
		for i := range rendered {
			rendered[i] = CellValue(row, headers, i)
		}
		cells = append(cells, rendered)
	}
	return cells
}

func cellString(v gjson.Result) string {
	if v.Type == gjson.Null {
		return ""
	}
	return v.String()
}
