package interpret

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabletalk/tabletalk/internal/models"
)

func parseTestRows(t *testing.T, raw string) []Row {
	t.Helper()
	rows := parseRows(json.RawMessage(raw))
	require.NotEmpty(t, rows)
	return rows
}

func TestCellValueExactKeyMatch(t *testing.T) {
	row := parseTestRows(t, `[{"age": 40, "sex": "M"}]`)[0]
	headers := []string{"sex", "age"} // reordered relative to the row
	assert.Equal(t, "M", CellValue(row, headers, 0))
	assert.Equal(t, "40", CellValue(row, headers, 1))
}

func TestCellValuePositionalFallback(t *testing.T) {
	// keys don't match the inferred headers; values resolve by position
	row := parseTestRows(t, `[{"a": 40, "b": "M"}]`)[0]
	headers := []string{"Age", "Sex"}
	assert.Equal(t, "40", CellValue(row, headers, 0))
	assert.Equal(t, "M", CellValue(row, headers, 1))
}

func TestCellValueArityMismatch(t *testing.T) {
	row := parseTestRows(t, `[{"a": 40}]`)[0]
	headers := []string{"Age", "Sex", "City"}
	assert.Equal(t, "40", CellValue(row, headers, 0))
	assert.Equal(t, "", CellValue(row, headers, 1))
	assert.Equal(t, "", CellValue(row, headers, 2))
}

func TestCellValueScalarRow(t *testing.T) {
	row := parseTestRows(t, `["lonely"]`)[0]
	assert.True(t, row.Scalar)
	assert.Equal(t, "lonely", CellValue(row, []string{"a", "b"}, 0))
	assert.Equal(t, "", CellValue(row, []string{"a", "b"}, 1))
}

func TestCellValueNull(t *testing.T) {
	row := parseTestRows(t, `[{"a": null}]`)[0]
	assert.Equal(t, "", CellValue(row, []string{"a"}, 0))
}

func TestCellsMatrix(t *testing.T) {
	res := &models.QueryResult{
		SQLQueries: []string{"SELECT age, sex FROM patients"},
		Rows:       json.RawMessage(`[{"col_1": 40, "col_2": "M"}, {"col_1": 61, "col_2": "F"}]`),
	}
	v := Interpret(res)
	assert.Equal(t, []string{"age", "sex"}, v.Headers())
	assert.Equal(t, [][]string{{"40", "M"}, {"61", "F"}}, v.Cells())
}

func TestHeadersFallBackToRowKeys(t *testing.T) {
	v := View{Rows: parseTestRows(t, `[{"x": 1, "y": 2}]`)}
	assert.Equal(t, []string{"x", "y"}, v.Headers())
}

func TestCellsUnnamedRowsWithoutHeaders(t *testing.T) {
	v := View{Rows: parseTestRows(t, `[[1, 2], [3]]`)}
	assert.Nil(t, v.Headers())
	assert.Equal(t, [][]string{{"1", "2"}, {"3"}}, v.Cells())
}

func TestCellsNeverMutateRows(t *testing.T) {
	rows := parseTestRows(t, `[{"a": 1}]`)
	v := View{Columns: []string{"one", "two", "three"}, Rows: rows}
	_ = v.Cells()
	require.Equal(t, []string{"a"}, v.Rows[0].Keys)
	require.Len(t, v.Rows[0].Values, 1)
}
