// Package interpret reconciles the backend's loosely structured query results
// into something displayable: a cleaned answer string and a best-guess ordered
// list of column names. The backend gives no stable column-name contract, so
// names are recovered from whichever signal is present — an embedded pipe
// table in the answer, the generated SQL, a schema dump in the agent trace,
// or the rows themselves — via a fixed fallback chain where the first
// strategy yielding a non-empty result wins.
package interpret

import (
	"github.com/tidwall/gjson"

	"github.com/tabletalk/tabletalk/internal/models"
)

// View is the derived display form of a QueryResult. Columns only supply
// display labels; they never mutate rows, and their length may differ from
// the actual row arity.
type View struct {
	Answer  string
	Columns []string
	Rows    []Row
}

// Row is one result row. Named rows keep their keys in document order,
// aligned with Values. Positional rows have nil Keys. Scalar rows hold a
// single value and render as a single cell.
type Row struct {
	Keys   []string
	Values []gjson.Result
	Scalar bool
}

// Named reports whether the row carried column names of its own.
func (r Row) Named() bool { return r.Keys != nil }

// Interpret computes the derived view. It is a pure function of its input,
// and every strategy degrades to "nothing found" on malformed input rather
// than failing, so it never errors.
func Interpret(res *models.QueryResult) View {
	v := View{Rows: parseRows(res.Rows)}

	answer := res.Answer
	if cols, trimmed, ok := pipeTableColumns(answer); ok {
		v.Columns = cols
		answer = trimmed
	} else {
		// Tuple stripping only cleans the text; it never yields columns.
		answer = stripTrailingTuples(answer)
		if cols := columnsFromSQL(firstQuery(res.SQLQueries)); len(cols) > 0 {
			v.Columns = cols
		} else if cols := columnsFromSchema(res.RawAgentOutput); len(cols) > 0 {
			v.Columns = cols
		} else if len(v.Rows) > 0 && v.Rows[0].Named() {
			v.Columns = append([]string(nil), v.Rows[0].Keys...)
		}
	}

	v.Answer = stripReturnedRows(answer)
	return v
}

func firstQuery(queries []string) string {
	if len(queries) == 0 {
		return ""
	}
	return queries[0]
}

// parseRows accepts rows in any of the shapes the backend has been seen to
// produce: an array of objects, an array of arrays, or an array of scalars.
// Anything else yields no rows.
func parseRows(raw []byte) []Row {
	if len(raw) == 0 {
		return nil
	}
	parsed := gjson.ParseBytes(raw)
	if !parsed.IsArray() {
		return nil
	}
	var rows []Row
	parsed.ForEach(func(_, item gjson.Result) bool {
		switch {
		case item.IsObject():
			row := Row{Keys: []string{}}
			item.ForEach(func(key, value gjson.Result) bool {
				row.Keys = append(row.Keys, key.String())
				row.Values = append(row.Values, value)
				return true
			})
			rows = append(rows, row)
		case item.IsArray():
			var row Row
			item.ForEach(func(_, value gjson.Result) bool {
				row.Values = append(row.Values, value)
				return true
			})
			rows = append(rows, row)
		default:
			rows = append(rows, Row{Values: []gjson.Result{item}, Scalar: true})
		}
		return true
	})
	return rows
}
